package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont 返回指定字号的界面字体（Go Regular）
//
// 字体源只解析一次，之后按字号创建 face。
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse UI font: %w", err)
		}
		rm.fontSource = source
	}

	return &text.GoTextFace{
		Source: rm.fontSource,
		Size:   size,
	}, nil
}
