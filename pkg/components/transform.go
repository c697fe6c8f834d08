package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 存储实体在父节点局部坐标系中的位置、绕 Y 轴旋转和统一缩放。
//
// 行星的父节点是场景根，卫星的父节点是行星。
// 子节点继承父节点的整个坐标系：世界矩阵 = 父世界矩阵 × T(Position) × Ry(RotationY) × S(Scale)。
// 因此卫星的轨道半径会乘上行星半径，并随行星的轨道角一起转动。
type TransformComponent struct {
	// Position 局部坐标
	Position mgl64.Vec3

	// RotationY 绕 Y 轴旋转（弧度），轨道天体等于其轨道角
	RotationY float64

	// Scale 统一缩放（球体半径）
	Scale float64
}

// Local 返回局部变换矩阵 T·Ry·S
func (t *TransformComponent) Local() mgl64.Mat4 {
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(t.RotationY)).
		Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}
