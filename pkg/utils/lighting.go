package utils

import (
	"image/color"
	"math"
)

// Illuminate 计算受光材质在距点光源 distance 处的亮度系数
//
// 公式：clamp(ambient + intensity / distance^decay, 0, 1)
//
// distance 趋近 0 时视为完全照亮。
func Illuminate(ambient, intensity, distance, decay float64) float64 {
	if distance <= 1e-6 {
		return 1
	}
	l := ambient + intensity/math.Pow(distance, decay)
	return math.Max(0, math.Min(1, l))
}

// ShadeColor 按亮度系数缩放颜色（不影响 alpha）
func ShadeColor(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) * math.Max(0, math.Min(1, factor))))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
