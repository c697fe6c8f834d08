package systems

import (
	"image/color"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮配色（按状态）
var (
	buttonFillNormal   = color.RGBA{40, 44, 52, 220}
	buttonFillHovered  = color.RGBA{60, 66, 78, 230}
	buttonFillClicked  = color.RGBA{24, 26, 32, 240}
	buttonFillDisabled = color.RGBA{30, 30, 30, 160}
	buttonBorder       = color.RGBA{200, 200, 200, 255}
	buttonText         = color.RGBA{255, 255, 255, 255}
	buttonTextDisabled = color.RGBA{120, 120, 120, 255}
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有可见按钮（背景、边框、居中文字）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Visible {
		return
	}

	w, h := button.Size()
	x, y := float32(button.X), float32(button.Y)

	vector.FillRect(screen, x, y, float32(w), float32(h), buttonFill(button.State), false)
	vector.StrokeRect(screen, x, y, float32(w), float32(h), float32(button.Scale), buttonBorder, false)

	s.drawButtonText(screen, button, w, h)
}

// drawButtonText 渲染按钮文字（水平垂直居中）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, w, h float64) {
	if button.Label == "" || button.Font == nil {
		return
	}

	scale := button.Scale
	if scale <= 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(button.X+w/2, button.Y+h/2)

	if button.State == components.UIDisabled {
		op.ColorScale.ScaleWithColor(buttonTextDisabled)
	} else {
		op.ColorScale.ScaleWithColor(buttonText)
	}

	text.Draw(screen, button.Label, button.Font, op)
}

func buttonFill(state components.UIState) color.RGBA {
	switch state {
	case components.UIHovered:
		return buttonFillHovered
	case components.UIClicked:
		return buttonFillClicked
	case components.UIDisabled:
		return buttonFillDisabled
	default:
		return buttonFillNormal
	}
}
