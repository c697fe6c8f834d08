package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one renderable scene instance.
// Each scene owns its own entity manager, camera and systems, so several
// independent scenes can exist side by side (e.g. in tests).
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)

	// Resize is called whenever the window's logical size or device scale
	// factor changes. It returns the render surface size in pixels.
	Resize(width, height int, scale float64) (int, int)
}

// Closer 是一个可选接口，场景在程序退出时保存设置等
type Closer interface {
	// Close 返回 error 仅用于记录日志，程序仍会正常退出
	Close() error
}
