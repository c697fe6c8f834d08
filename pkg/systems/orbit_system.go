package systems

import (
	"math"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitSystem 轨道动画系统
//
// 每个 tick 推进一次所有天体的轨道角度：
//
//	angle += speed
//	rotationY = angle
//	x = sin(angle) * distance
//	z = cos(angle) * distance
//
// 天体的朝向与轨道角一致，挂在行星下的卫星因此随行星一起转动。
// Y 坐标不变，角度不取模。速度单位是弧度/tick，与帧率无关的墙钟时间不参与计算，
// 因此 Update 的 dt 参数被忽略。
//
// 遍历顺序：从根节点出发按层级顺序，先行星后其卫星。
// 卫星的坐标是相对于所属行星的局部坐标，世界坐标见 WorldPosition。
type OrbitSystem struct {
	entityManager *ecs.EntityManager
	root          ecs.EntityID
	ticks         int
}

// NewOrbitSystem 创建轨道动画系统
func NewOrbitSystem(em *ecs.EntityManager, root ecs.EntityID) *OrbitSystem {
	return &OrbitSystem{
		entityManager: em,
		root:          root,
	}
}

// Update 推进一个 tick
func (s *OrbitSystem) Update(dt float64) {
	s.advance(s.root)
	s.ticks++
}

// Step 连续推进 n 个 tick
func (s *OrbitSystem) Step(n int) {
	for i := 0; i < n; i++ {
		s.Update(0)
	}
}

// Ticks 返回已推进的 tick 数
func (s *OrbitSystem) Ticks() int {
	return s.ticks
}

// advance 推进 id 自身（如果有轨道）并按顺序递归处理子节点
func (s *OrbitSystem) advance(id ecs.EntityID) {
	orbit, hasOrbit := ecs.GetComponent[*components.OrbitComponent](s.entityManager, id)
	transform, hasTransform := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if hasOrbit && hasTransform && orbit.Body != nil {
		orbit.Angle += orbit.Body.Speed
		transform.RotationY = orbit.Angle
		transform.Position[0] = math.Sin(orbit.Angle) * orbit.Body.Distance
		transform.Position[2] = math.Cos(orbit.Angle) * orbit.Body.Distance
	}

	h, ok := ecs.GetComponent[*components.HierarchyComponent](s.entityManager, id)
	if !ok {
		return
	}
	for _, child := range h.Children {
		s.advance(child)
	}
}

// WorldMatrix 计算实体的世界变换矩阵：沿父链依次左乘各级局部矩阵
//
// 没有 TransformComponent 的节点（星空、环境光）视为单位变换。
func WorldMatrix(em *ecs.EntityManager, id ecs.EntityID) mgl64.Mat4 {
	m := mgl64.Ident4()
	for id != ecs.InvalidEntity {
		if t, ok := ecs.GetComponent[*components.TransformComponent](em, id); ok {
			m = t.Local().Mul4(m)
		}
		h, ok := ecs.GetComponent[*components.HierarchyComponent](em, id)
		if !ok {
			break
		}
		id = h.Parent
	}
	return m
}

// WorldPosition 返回实体原点的世界坐标
//
// 卫星 = 行星位置 + Ry(行星角) · (行星半径 · 卫星局部坐标)。
func WorldPosition(em *ecs.EntityManager, id ecs.EntityID) mgl64.Vec3 {
	return WorldMatrix(em, id).Col(3).Vec3()
}

// WorldScale 返回沿父链累乘的统一缩放（卫星绘制半径 = 行星半径 × 卫星半径）
func WorldScale(em *ecs.EntityManager, id ecs.EntityID) float64 {
	scale := 1.0
	for id != ecs.InvalidEntity {
		if t, ok := ecs.GetComponent[*components.TransformComponent](em, id); ok {
			scale *= t.Scale
		}
		h, ok := ecs.GetComponent[*components.HierarchyComponent](em, id)
		if !ok {
			break
		}
		id = h.Parent
	}
	return scale
}
