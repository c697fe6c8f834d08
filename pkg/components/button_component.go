package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// UIState 按钮的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 鼠标悬停
	UIHovered
	// UIClicked 按下
	UIClicked
	// UIDisabled 禁用
	UIDisabled
)

// ButtonComponent 按钮组件（ECS 架构）
//
// 设计原则：
//   - 纯数据组件，交互逻辑在 ButtonSystem 中
//   - 位置由锚点（距窗口右下角的偏移）决定，窗口缩放后由 ButtonSystem 重新布局
//   - Visible=false 的按钮既不绘制也不响应点击
type ButtonComponent struct {
	// Label 按钮文字
	Label string
	// Font 文字字体
	Font *text.GoTextFace

	// X, Y 左上角屏幕坐标（自动计算）
	X, Y float64
	// Width, Height 逻辑尺寸（设备无关像素）
	Width, Height float64
	// Scale 逻辑像素 → 渲染表面像素的比例（自动计算）
	Scale float64

	// OffsetRight, OffsetBottom 右下角锚点偏移
	OffsetRight  float64
	OffsetBottom float64

	// Visible 是否显示
	Visible bool
	// Enabled 是否启用（禁用时显示为灰色，不响应点击）
	Enabled bool
	// State 当前交互状态
	State UIState

	// OnClick 点击回调函数
	OnClick func()
}

// Size 返回按钮在渲染表面上的实际尺寸
func (b *ButtonComponent) Size() (float64, float64) {
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	return b.Width * scale, b.Height * scale
}

// Contains 判断屏幕坐标是否在按钮范围内
func (b *ButtonComponent) Contains(x, y float64) bool {
	w, h := b.Size()
	return x >= b.X && x < b.X+w && y >= b.Y && y < b.Y+h
}
