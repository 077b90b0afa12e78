package systems

import (
	"log"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// PlayerCarrySystem 玩家背动物的控制逻辑
// 负责"只有玩家能捡"和"一次只背一只"的约束
type PlayerCarrySystem struct {
	entityManager *ecs.EntityManager
	items         *AnimalItemSystem
}

// NewPlayerCarrySystem 创建玩家搬运系统
func NewPlayerCarrySystem(em *ecs.EntityManager, items *AnimalItemSystem) *PlayerCarrySystem {
	return &PlayerCarrySystem{
		entityManager: em,
		items:         items,
	}
}

// CarriedAnimal 返回玩家当前背着的动物
// 动物已被删除（例如重新生成）时会同时清空搬运状态
func (s *PlayerCarrySystem) CarriedAnimal(player ecs.EntityID) ecs.EntityID {
	carrier, ok := ecs.GetComponent[*components.CarrierComponent](s.entityManager, player)
	if !ok || !carrier.IsCarrying() {
		return ecs.InvalidEntity
	}
	if !s.entityManager.Exists(carrier.Carried) || s.entityManager.IsMarkedForDestroy(carrier.Carried) {
		carrier.Carried = ecs.InvalidEntity
	}
	return carrier.Carried
}

// HasCarriedAnimal 玩家是否正背着动物
func (s *PlayerCarrySystem) HasCarriedAnimal(player ecs.EntityID) bool {
	return s.CarriedAnimal(player) != ecs.InvalidEntity
}

// TryPickup 玩家尝试捡起动物
//
// 只有未被禁用的玩家能捡，且手上不能已有动物。
func (s *PlayerCarrySystem) TryPickup(player, animal ecs.EntityID) bool {
	playerComp, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, player)
	if !ok || playerComp.Disabled {
		return false
	}
	carrier, ok := ecs.GetComponent[*components.CarrierComponent](s.entityManager, player)
	if !ok || s.HasCarriedAnimal(player) {
		return false
	}

	if !s.items.Pickup(animal, carrier.AttachPoint) {
		return false
	}
	carrier.Carried = animal
	return true
}

// DropAnimalAtCheckpoint 把背着的动物放到检查点
func (s *PlayerCarrySystem) DropAnimalAtCheckpoint(player, dropPoint ecs.EntityID) bool {
	animal := s.CarriedAnimal(player)
	if animal == ecs.InvalidEntity {
		return false
	}
	if !s.items.Drop(animal, dropPoint) {
		log.Printf("[PlayerCarrySystem] Warning: failed to drop entity %d", animal)
		return false
	}

	carrier, _ := ecs.GetComponent[*components.CarrierComponent](s.entityManager, player)
	carrier.Carried = ecs.InvalidEntity
	return true
}

// ReleaseCarried 清空玩家的搬运状态（不改变动物本身）
func (s *PlayerCarrySystem) ReleaseCarried(player ecs.EntityID) {
	if carrier, ok := ecs.GetComponent[*components.CarrierComponent](s.entityManager, player); ok {
		carrier.Carried = ecs.InvalidEntity
	}
}
