package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawDebugInfo 绘制调试信息（F3 切换，-verbose 时默认开启）
func (s *SolarScene) drawDebugInfo(screen *ebiten.Image) {
	w, h := s.viewportSystem.SurfaceSize()
	msg := fmt.Sprintf(
		"TPS: %0.1f  FPS: %0.1f\nTick: %d\nPlayback: %s\nCamera distance: %0.1f\nSurface: %dx%d (x%0.2f)\nPending loads: %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.orbitSystem.Ticks(),
		s.playback.State(),
		s.controlsSystem.Distance(),
		w, h, s.viewportSystem.Scale(),
		s.resourceManager.Pending(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
