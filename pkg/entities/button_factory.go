package entities

import (
	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewPlaybackButton 创建右下角的播放/暂停按钮实体
//
// 参数：
//   - em: 实体管理器
//   - label: 按钮文字
//   - font: 文字字体（nil 时只绘制背景）
//   - ui: 按钮尺寸和边距配置
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//
// 按钮默认不可见且禁用，由 PlaybackController 根据播放状态切换。
// 屏幕坐标在 ButtonSystem.Layout 中按窗口尺寸计算。
func NewPlaybackButton(
	em *ecs.EntityManager,
	label string,
	font *text.GoTextFace,
	ui config.UIConfig,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Label:        label,
		Font:         font,
		Width:        ui.ButtonWidth,
		Height:       ui.ButtonHeight,
		OffsetRight:  ui.Margin,
		OffsetBottom: ui.Margin,
		Visible:      false,
		Enabled:      false,
		State:        components.UIDisabled,
		OnClick:      onClick,
	})

	return entity
}
