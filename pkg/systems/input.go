package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 单个 tick 的指针输入快照（鼠标或单指触摸）
//
// 坐标为渲染表面坐标（与 Layout 返回的尺寸一致）。
type PointerState struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// WheelY 滚轮增量，正值表示向上滚动（放大）
	WheelY float64
}

// PointerSource 每个 tick 提供一次指针输入
type PointerSource interface {
	Poll() PointerState
}

// EbitenPointer 从 ebiten 读取鼠标和触摸输入
//
// 有触摸时跟踪第一根手指，直到它抬起；否则使用鼠标左键。
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

// NewEbitenPointer 创建 ebiten 输入源
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// Poll 读取当前 tick 的输入
func (p *EbitenPointer) Poll() PointerState {
	_, wheelY := ebiten.Wheel()

	if !p.touching {
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 0 {
			p.touchID = p.touchIDs[0]
			p.touching = true
			p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
			return PointerState{X: p.lastX, Y: p.lastY, Pressed: true, JustPressed: true, WheelY: wheelY}
		}
	} else {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return PointerState{X: p.lastX, Y: p.lastY, JustReleased: true, WheelY: wheelY}
		}
		// 抬起后 TouchPosition 返回 (0, 0)，保留最后一次有效坐标
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
		return PointerState{X: p.lastX, Y: p.lastY, Pressed: true, WheelY: wheelY}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		WheelY:       wheelY,
	}
}
