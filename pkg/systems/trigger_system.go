package systems

import (
	"math"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/samber/lo"
)

// TriggerSystem 检测玩家与动物、检查点的重叠
//
// 玩家碰到空闲动物时尝试捡起；进入检查点范围时（边沿触发）调用 OnPlayerEnter。
type TriggerSystem struct {
	entityManager *ecs.EntityManager
	carry         *PlayerCarrySystem
	checkpoints   *CheckpointSystem
}

// NewTriggerSystem 创建触发检测系统
func NewTriggerSystem(em *ecs.EntityManager, carry *PlayerCarrySystem, checkpoints *CheckpointSystem) *TriggerSystem {
	return &TriggerSystem{
		entityManager: em,
		carry:         carry,
		checkpoints:   checkpoints,
	}
}

// Update 对每个玩家执行重叠检测
func (s *TriggerSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.TransformComponent](s.entityManager)
	for _, player := range players {
		playerComp, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, player)
		playerPos, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, player)
		if playerComp.Disabled {
			continue
		}

		s.checkAnimals(player, playerComp, playerPos)
		s.checkCheckpoints(player, playerPos)
	}
}

// checkAnimals 玩家空手时捡起第一只碰到的空闲动物
func (s *TriggerSystem) checkAnimals(player ecs.EntityID, playerComp *components.PlayerComponent, playerPos *components.TransformComponent) {
	if s.carry.HasCarriedAnimal(player) {
		return
	}

	animals := ecs.GetEntitiesWith2[*components.AnimalItemComponent, *components.TransformComponent](s.entityManager)
	candidates := lo.Filter(animals, func(animal ecs.EntityID, _ int) bool {
		return s.pickable(animal)
	})
	for _, animal := range candidates {
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, animal)
		pos, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, animal)
		if planarDistance(playerPos, pos) <= playerComp.Radius+body.Radius {
			if s.carry.TryPickup(player, animal) {
				return
			}
		}
	}
}

// pickable 动物处于空闲状态、碰撞开启且可见
func (s *TriggerSystem) pickable(animal ecs.EntityID) bool {
	if s.entityManager.IsMarkedForDestroy(animal) {
		return false
	}
	item, _ := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, animal)
	if !item.CanBePickedUp() {
		return false
	}
	body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, animal)
	if !ok || !body.CollisionEnabled {
		return false
	}
	if visibility, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, animal); ok && !visibility.Active {
		return false
	}
	return true
}

// checkCheckpoints 检测进入检查点范围
func (s *TriggerSystem) checkCheckpoints(player ecs.EntityID, playerPos *components.TransformComponent) {
	checkpoints := ecs.GetEntitiesWith2[*components.CheckpointComponent, *components.TransformComponent](s.entityManager)
	for _, checkpoint := range checkpoints {
		cp, _ := ecs.GetComponent[*components.CheckpointComponent](s.entityManager, checkpoint)
		pos, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, checkpoint)

		inside := planarDistance(playerPos, pos) <= cp.Radius
		if inside && !cp.PlayerInside {
			s.checkpoints.OnPlayerEnter(checkpoint, player)
		}
		cp.PlayerInside = inside
	}
}

// planarDistance 计算两个变换在地面（XZ 平面）上的距离
func planarDistance(a, b *components.TransformComponent) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
