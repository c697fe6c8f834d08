package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor YAML 中的十六进制颜色（"#rrggbb" 或 "#rrggbbaa"）
type HexColor string

// RGBA 解析颜色；格式非法时返回白色
// 格式校验在 Validate 阶段完成，渲染时不再报错
func (h HexColor) RGBA() color.RGBA {
	c, err := ParseHexColor(string(h))
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// ParseHexColor 解析 "#rrggbb" / "#rrggbbaa" / "0xrrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(raw) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
