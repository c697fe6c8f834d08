package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// StarFieldComponent 背景星空（点云）
//
// Points 是相对于实体 TransformComponent 的局部坐标。
type StarFieldComponent struct {
	Points []mgl64.Vec3

	// Size 点的世界尺寸
	Size float64

	Color   color.RGBA
	Opacity float64
}
