package systems

import (
	"log"
	"math"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
)

// ResizeListener 渲染表面尺寸变化回调（表面像素 + 缩放比例）
type ResizeListener func(surfaceWidth, surfaceHeight int, scale float64)

// ViewportSystem 视口管理
//
// 窗口尺寸或设备像素比变化时：
//   - 更新相机宽高比并重建投影矩阵
//   - 记录渲染表面尺寸（逻辑尺寸 × 缩放比例，缩放比例上限 config.MaxPixelRatio）
//   - 通知监听者（按钮布局等）
//
// 相同参数的重复调用不产生任何变化。
type ViewportSystem struct {
	entityManager *ecs.EntityManager
	camera        ecs.EntityID

	width, height int
	scale         float64
	surfaceWidth  int
	surfaceHeight int
	listeners     []ResizeListener
}

// NewViewportSystem 创建视口管理系统
func NewViewportSystem(em *ecs.EntityManager, camera ecs.EntityID) *ViewportSystem {
	return &ViewportSystem{
		entityManager: em,
		camera:        camera,
	}
}

// OnResize 注册尺寸变化监听者
func (s *ViewportSystem) OnResize(fn ResizeListener) {
	s.listeners = append(s.listeners, fn)
}

// Resize 应用新的窗口逻辑尺寸和设备缩放比例
//
// 返回是否发生了变化。宽或高 <= 0（窗口最小化）时忽略。
func (s *ViewportSystem) Resize(width, height int, scale float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	scale = clampScale(scale)

	if width == s.width && height == s.height && scale == s.scale {
		return false
	}

	s.width = width
	s.height = height
	s.scale = scale
	s.surfaceWidth = int(math.Round(float64(width) * scale))
	s.surfaceHeight = int(math.Round(float64(height) * scale))

	if cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera); ok {
		cam.Aspect = float64(width) / float64(height)
		cam.Projection = utils.PerspectiveFromDegrees(cam.FOV, cam.Aspect, cam.Near, cam.Far)
	}

	log.Printf("[Viewport] Resized to %dx%d (scale %.2f, surface %dx%d)",
		width, height, scale, s.surfaceWidth, s.surfaceHeight)

	for _, fn := range s.listeners {
		fn(s.surfaceWidth, s.surfaceHeight, s.scale)
	}
	return true
}

// Size 返回逻辑尺寸
func (s *ViewportSystem) Size() (int, int) {
	return s.width, s.height
}

// SurfaceSize 返回渲染表面尺寸（像素）
func (s *ViewportSystem) SurfaceSize() (int, int) {
	return s.surfaceWidth, s.surfaceHeight
}

// Scale 返回当前缩放比例
func (s *ViewportSystem) Scale() float64 {
	return s.scale
}

func clampScale(scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) {
		return 1
	}
	return math.Min(scale, config.MaxPixelRatio)
}
