package systems

import (
	"math"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/decker502/solarsystem/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// zoomStep 每格滚轮的缩放比例（ZoomSpeed = 1 时）
const zoomStep = 0.95

var worldUp = mgl64.Vec3{0, 1, 0}

// OrbitControlsSystem 轨道相机控制系统
//
// 相机绕目标点运动，状态以球坐标 (Radius, Azimuth, Polar) 保存在
// OrbitControlsComponent 中：
//   - 拖动（鼠标左键或单指）旋转：水平拖动整个视口高度 = 旋转 2π
//   - 滚轮缩放：距离限制在 [MinDistance, MaxDistance]
//   - 开启阻尼时，每个 tick 只应用 DampingFactor 比例的速度，剩余速度按 (1 - DampingFactor) 衰减
//
// 在按钮上按下的拖动不会旋转相机（blocked）。
type OrbitControlsSystem struct {
	entityManager *ecs.EntityManager
	camera        ecs.EntityID
	viewport      *ViewportSystem
}

// NewOrbitControlsSystem 创建轨道相机控制系统
func NewOrbitControlsSystem(em *ecs.EntityManager, camera ecs.EntityID, viewport *ViewportSystem) *OrbitControlsSystem {
	return &OrbitControlsSystem{
		entityManager: em,
		camera:        camera,
		viewport:      viewport,
	}
}

// Update 处理一帧输入并更新相机位置和视图矩阵
//
// 参数:
//   - in: 本帧指针输入
//   - blocked: 指针按下位置被 UI 占用时为 true
func (s *OrbitControlsSystem) Update(in PointerState, blocked bool) {
	ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](s.entityManager, s.camera)
	if !ok {
		return
	}

	s.handleDrag(ctrl, in, blocked)

	if in.WheelY > 0 {
		s.Zoom(ctrl, math.Pow(zoomStep, ctrl.ZoomSpeed))
	} else if in.WheelY < 0 {
		s.Zoom(ctrl, 1/math.Pow(zoomStep, ctrl.ZoomSpeed))
	}

	s.Apply()
}

func (s *OrbitControlsSystem) handleDrag(ctrl *components.OrbitControlsComponent, in PointerState, blocked bool) {
	if in.JustPressed && !blocked {
		ctrl.Dragging = true
		ctrl.LastX, ctrl.LastY = in.X, in.Y
		return
	}
	if !in.Pressed {
		ctrl.Dragging = false
		return
	}
	if !ctrl.Dragging {
		return
	}

	dx := in.X - ctrl.LastX
	dy := in.Y - ctrl.LastY
	ctrl.LastX, ctrl.LastY = in.X, in.Y
	if dx == 0 && dy == 0 {
		return
	}

	height := 1.0
	if s.viewport != nil {
		if _, h := s.viewport.SurfaceSize(); h > 0 {
			height = float64(h)
		}
	}
	s.Rotate(ctrl,
		-2*math.Pi*float64(dx)/height*ctrl.RotateSpeed,
		-2*math.Pi*float64(dy)/height*ctrl.RotateSpeed,
	)
}

// Rotate 累加旋转速度（弧度）
func (s *OrbitControlsSystem) Rotate(ctrl *components.OrbitControlsComponent, deltaAzimuth, deltaPolar float64) {
	ctrl.DeltaAzimuth += deltaAzimuth
	ctrl.DeltaPolar += deltaPolar
}

// Zoom 按比例缩放距离（< 1 拉近，> 1 拉远）
func (s *OrbitControlsSystem) Zoom(ctrl *components.OrbitControlsComponent, scale float64) {
	if scale <= 0 {
		return
	}
	ctrl.ZoomScale *= scale
}

// Apply 将累计的旋转和缩放应用到相机
func (s *OrbitControlsSystem) Apply() {
	ctrl, ok := ecs.GetComponent[*components.OrbitControlsComponent](s.entityManager, s.camera)
	if !ok {
		return
	}
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera)
	if !ok {
		return
	}

	if ctrl.EnableDamping {
		ctrl.Azimuth += ctrl.DeltaAzimuth * ctrl.DampingFactor
		ctrl.Polar += ctrl.DeltaPolar * ctrl.DampingFactor
		ctrl.DeltaAzimuth *= 1 - ctrl.DampingFactor
		ctrl.DeltaPolar *= 1 - ctrl.DampingFactor
	} else {
		ctrl.Azimuth += ctrl.DeltaAzimuth
		ctrl.Polar += ctrl.DeltaPolar
		ctrl.DeltaAzimuth = 0
		ctrl.DeltaPolar = 0
	}
	ctrl.Polar = utils.ClampPolar(ctrl.Polar)

	if ctrl.ZoomScale <= 0 {
		ctrl.ZoomScale = 1
	}
	ctrl.Radius = mgl64.Clamp(ctrl.Radius*ctrl.ZoomScale, ctrl.MinDistance, ctrl.MaxDistance)
	ctrl.ZoomScale = 1

	offset := utils.Spherical{Radius: ctrl.Radius, Polar: ctrl.Polar, Azimuth: ctrl.Azimuth}.Vec3()
	cam.Position = cam.Target.Add(offset)
	cam.View = mgl64.LookAtV(cam.Position, cam.Target, worldUp)
}

// Distance 返回相机到目标点的距离
func (s *OrbitControlsSystem) Distance() float64 {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.camera)
	if !ok {
		return 0
	}
	return cam.Position.Sub(cam.Target).Len()
}
