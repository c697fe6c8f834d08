package components

import "github.com/go-gl/mathgl/mgl64"

// CameraComponent 透视相机
//
// Projection 由 ViewportSystem 在窗口尺寸变化时重建，
// View 由 OrbitControlsSystem 每帧更新。
type CameraComponent struct {
	// FOV 垂直视角（度）
	FOV  float64
	Near float64
	Far  float64

	// Aspect 宽高比
	Aspect float64

	// Position 相机世界坐标
	Position mgl64.Vec3

	// Target 观察点
	Target mgl64.Vec3

	Projection mgl64.Mat4
	View       mgl64.Mat4
}

// OrbitControlsComponent 轨道相机控制状态
//
// 相机位置由以 Target 为中心的球坐标 (Radius, Azimuth, Polar) 决定。
// 拖动和滚轮输入累积到 Delta 字段，开启阻尼时每帧按 DampingFactor 衰减。
type OrbitControlsComponent struct {
	Radius float64
	// Azimuth 绕 Y 轴的角度（弧度）
	Azimuth float64
	// Polar 与 +Y 轴的夹角（弧度）
	Polar float64

	DeltaAzimuth float64
	DeltaPolar   float64
	// ZoomScale 待应用的缩放倍率（1 表示不缩放）
	ZoomScale float64

	MinDistance   float64
	MaxDistance   float64
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64

	// Dragging 是否正在拖动
	Dragging bool
	// LastX, LastY 上一帧的指针位置
	LastX, LastY int
	// TouchID 正在拖动的触点，鼠标拖动时为 -1
	TouchID int
}
