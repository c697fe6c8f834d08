package systems

import (
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 按窗口尺寸重新布局（右下角锚点）
//   - 检测悬停和按下（更新按钮状态）
//   - 在同一个按钮内按下并释放时触发 OnClick 回调，每个 tick 最多触发一次
//   - 根据 Visible/Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	// pressed 本次按下时指针所在的按钮（没有时为 InvalidEntity）
	pressed ecs.EntityID
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Layout 根据渲染表面尺寸重新计算按钮位置
// 可作为 ViewportSystem 的 ResizeListener
func (s *ButtonSystem) Layout(surfaceWidth, surfaceHeight int, scale float64) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		button.Scale = scale
		w, h := button.Size()
		button.X = float64(surfaceWidth) - w - button.OffsetRight*scale
		button.Y = float64(surfaceHeight) - h - button.OffsetBottom*scale
	}
}

// HitTest 返回位于 (x, y) 的可见按钮
func (s *ButtonSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Visible && button.Contains(x, y) {
			return entityID, true
		}
	}
	return ecs.InvalidEntity, false
}

// Update 更新按钮交互状态
//
// 返回指针是否落在某个可见按钮上（用于阻止相机拖动）。
func (s *ButtonSystem) Update(in PointerState) bool {
	x, y := float64(in.X), float64(in.Y)
	overButton := false
	clicked := false

	if in.JustPressed {
		s.pressed, _ = s.HitTest(x, y)
	}
	pressed := s.pressed
	if in.JustReleased || !in.Pressed {
		s.pressed = ecs.InvalidEntity
	}

	// 查询所有按钮实体
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !button.Visible {
			continue
		}

		isHovered := button.Contains(x, y)
		if isHovered {
			overButton = true
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		switch {
		case !isHovered:
			button.State = components.UINormal
		case in.JustReleased && !clicked && entityID == pressed:
			// 释放瞬间触发回调
			button.State = components.UIHovered
			clicked = true
			if button.OnClick != nil {
				button.OnClick()
			}
		case in.Pressed && entityID == pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}

	return overButton
}

// ButtonAffordance 把按钮实体包装成可显示/启用的控件
type ButtonAffordance struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
}

// NewButtonAffordance 创建按钮控件包装
func NewButtonAffordance(em *ecs.EntityManager, entity ecs.EntityID) *ButtonAffordance {
	return &ButtonAffordance{entityManager: em, entity: entity}
}

// SetVisible 显示或隐藏按钮
func (a *ButtonAffordance) SetVisible(visible bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, a.entity); ok {
		button.Visible = visible
		if visible && button.Enabled {
			button.State = components.UINormal
		}
	}
}

// SetEnabled 启用或禁用按钮
func (a *ButtonAffordance) SetEnabled(enabled bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, a.entity); ok {
		button.Enabled = enabled
		if enabled {
			button.State = components.UINormal
		} else {
			button.State = components.UIDisabled
		}
	}
}

// Entity 返回按钮实体ID
func (a *ButtonAffordance) Entity() ecs.EntityID {
	return a.entity
}
