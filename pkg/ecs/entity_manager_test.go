package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

type testSpriteComponent struct {
	Index int
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

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if !em.EntityExists(id1) || !em.EntityExists(id2) {
		t.Error("Created entities should exist")
	}
	if em.EntityExists(InvalidEntity) {
		t.Error("InvalidEntity should never exist")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	// 获取组件
	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}

	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 指针组件可以原地修改
	pos.X = 5
	again, _ := GetComponent[*testPositionComponent](em, id)
	if again.X != 5 {
		t.Errorf("Expected mutation to be visible, got X=%f", again.X)
	}
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, found := GetComponent[*testPositionComponent](em, id); found {
		t.Error("Component should not be found before adding")
	}
	if _, found := GetComponent[*testPositionComponent](em, EntityID(999)); found {
		t.Error("Component should not be found on unknown entity")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	AddComponent(em, EntityID(42), &testPositionComponent{})

	if em.EntityExists(EntityID(42)) {
		t.Error("AddComponent should not create entities implicitly")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})

	// 添加后应该返回true
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	// 清理前实体仍存在
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityExists(id) {
		t.Error("Entity should not exist after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Destroy queue should be cleared after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})
	AddComponent(em, id1, &testSpriteComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(entities))
	}
	if entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询只拥有 Position 的实体（按 ID 升序）
	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Fatalf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
	if posEntities[0] != id1 || posEntities[1] != id2 {
		t.Errorf("Expected sorted result [%d %d], got %v", id1, id2, posEntities)
	}

	all3 := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testSpriteComponent](em)
	if len(all3) != 1 || all3[0] != id1 {
		t.Errorf("Expected [%d], got %v", id1, all3)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id2, &testPositionComponent{})
	AddComponent(em, id3, &testPositionComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	// 清理
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	if em.EntityExists(id1) {
		t.Error("id1 should be removed")
	}
	if !em.EntityExists(id2) {
		t.Error("id2 should still exist")
	}
	if em.EntityExists(id3) {
		t.Error("id3 should be removed")
	}
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity left, got %d", em.EntityCount())
	}
}
