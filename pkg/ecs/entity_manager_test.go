package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y, Z float64
}

type testOrbitComponent struct {
	Angle float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity {
		t.Error("First entity must not be InvalidEntity")
	}

	if em.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 10, Z: 20})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 10 || retrieved.Z != 20 {
		t.Errorf("Component data mismatch, expected (10, 20), got (%f, %f)", retrieved.X, retrieved.Z)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testOrbitComponent{Angle: 0.5})

	orbit, ok := GetComponent[*testOrbitComponent](em, id)
	if !ok {
		t.Fatal("GetComponent should find *testOrbitComponent")
	}
	if orbit.Angle != 0.5 {
		t.Errorf("Angle: got %v, want 0.5", orbit.Angle)
	}

	// 指针组件可以就地修改
	orbit.Angle += 0.25
	again, _ := GetComponent[*testOrbitComponent](em, id)
	if again.Angle != 0.75 {
		t.Errorf("Angle after mutation: got %v, want 0.75", again.Angle)
	}

	if _, ok := GetComponent[*testTransformComponent](em, id); ok {
		t.Error("GetComponent should not find a component that was never added")
	}

	if !HasComponent[*testOrbitComponent](em, id) {
		t.Error("HasComponent should be true")
	}
	RemoveComponent[*testOrbitComponent](em, id)
	if HasComponent[*testOrbitComponent](em, id) {
		t.Error("HasComponent should be false after RemoveComponent")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransformComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWithOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testTransformComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testOrbitComponent{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testTransformComponent, *testOrbitComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("Result[%d] = %d, want %d (results must be in creation order)", i, got[i], ids[i])
		}
	}

	all := GetEntitiesWith1[*testTransformComponent](em)
	if len(all) != 20 {
		t.Errorf("Expected 20 entities with transform, got %d", len(all))
	}
}
