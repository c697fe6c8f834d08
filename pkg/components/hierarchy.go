package components

import "github.com/decker502/solarsystem/pkg/ecs"

// HierarchyComponent 场景图中的父子关系
//
// Children 的顺序与注册表中卫星的顺序一致。
type HierarchyComponent struct {
	// Parent 父实体，根节点为 ecs.InvalidEntity
	Parent ecs.EntityID

	// Children 子实体（有序）
	Children []ecs.EntityID
}
