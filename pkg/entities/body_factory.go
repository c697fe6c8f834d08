package entities

import (
	"fmt"

	"github.com/decker502/solarsystem/pkg/components"
	"github.com/decker502/solarsystem/pkg/config"
	"github.com/decker502/solarsystem/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewRootEntity 创建场景根节点
//
// 根节点位于原点，拥有太阳、行星、光源和星空。
func NewRootEntity(em *ecs.EntityManager) ecs.EntityID {
	root := em.CreateEntity()
	ecs.AddComponent(em, root, &components.TransformComponent{Scale: 1})
	ecs.AddComponent(em, root, &components.HierarchyComponent{Parent: ecs.InvalidEntity})
	return root
}

// NewBodyEntity 创建天体实体（行星或卫星）并挂到 parent 下
//
// 参数：
//   - em: 实体管理器
//   - parent: 父节点（行星挂根节点，卫星挂所属行星）
//   - body: 天体描述，实体持有该指针，动画系统从中读取速度和距离
//   - material: 已解析的材质
//
// 返回：
//   - 天体实体ID
//
// 初始局部坐标为 (distance, 0, 0)，缩放 = 半径。
func NewBodyEntity(em *ecs.EntityManager, parent ecs.EntityID, body *config.Body, material *config.Material) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.TransformComponent{
		Position: mgl64.Vec3{body.Distance, 0, 0},
		Scale:    body.Radius,
	})
	ecs.AddComponent(em, entity, &components.OrbitComponent{
		Body:  body,
		Angle: 0,
	})
	ecs.AddComponent(em, entity, newMeshComponent(body.Name, material))
	ecs.AddComponent(em, entity, &components.HierarchyComponent{})

	attachChild(em, parent, entity)
	return entity
}

// NewSunEntity 创建太阳实体（不参与轨道动画）
func NewSunEntity(em *ecs.EntityManager, parent ecs.EntityID, reg *config.Registry) (ecs.EntityID, error) {
	material, ok := reg.Material(reg.Sun.Material)
	if !ok {
		return ecs.InvalidEntity, fmt.Errorf("sun: unknown material '%s'", reg.Sun.Material)
	}

	name := reg.Sun.Name
	if name == "" {
		name = "Sun"
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.TransformComponent{Scale: reg.Sun.Radius})
	ecs.AddComponent(em, entity, newMeshComponent(name, material))
	ecs.AddComponent(em, entity, &components.HierarchyComponent{})
	attachChild(em, parent, entity)
	return entity, nil
}

func newMeshComponent(name string, material *config.Material) *components.MeshComponent {
	return &components.MeshComponent{
		Name:      name,
		Kind:      material.Kind,
		TextureID: material.Texture,
		Color:     material.Color.RGBA(),
	}
}

// attachChild 将 child 追加到 parent 的子节点列表末尾
func attachChild(em *ecs.EntityManager, parent, child ecs.EntityID) {
	if h, ok := ecs.GetComponent[*components.HierarchyComponent](em, child); ok {
		h.Parent = parent
	}
	if h, ok := ecs.GetComponent[*components.HierarchyComponent](em, parent); ok {
		h.Children = append(h.Children, child)
	}
}

// Children 返回实体的有序子节点列表（没有层级组件时返回 nil）
func Children(em *ecs.EntityManager, id ecs.EntityID) []ecs.EntityID {
	h, ok := ecs.GetComponent[*components.HierarchyComponent](em, id)
	if !ok {
		return nil
	}
	return h.Children
}
