package components

import "image/color"

// AmbientLightComponent 环境光
type AmbientLightComponent struct {
	Color     color.RGBA
	Intensity float64
}

// PointLightComponent 点光源（位置取实体的 TransformComponent）
type PointLightComponent struct {
	Color     color.RGBA
	Intensity float64
	// Decay 距离衰减指数
	Decay float64
}
