package systems

import (
	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// hazardCooldownEpsilon 浮点累减后残留的冷却时间视为已到
const hazardCooldownEpsilon = 1e-9

// HazardSystem 玩家进入危险区域时扣血
//
// 刚进入范围立即造成一次伤害，之后每隔 Interval 秒一次；离开范围后冷却清零。
type HazardSystem struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID
	health        *PlayerHealthSystem
}

// NewHazardSystem 创建危险区域系统
func NewHazardSystem(em *ecs.EntityManager, player ecs.EntityID, health *PlayerHealthSystem) *HazardSystem {
	return &HazardSystem{
		entityManager: em,
		player:        player,
		health:        health,
	}
}

// Update 检测玩家与所有危险区域的重叠
func (s *HazardSystem) Update(deltaTime float64) {
	if s.health == nil || s.health.IsDead() {
		return
	}
	playerPos, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	playerRadius := 0.0
	if playerComp, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player); ok {
		if playerComp.Disabled {
			return
		}
		playerRadius = playerComp.Radius
	}

	hazards := ecs.GetEntitiesWith2[*components.HazardComponent, *components.TransformComponent](s.entityManager)
	for _, id := range hazards {
		hazard, _ := ecs.GetComponent[*components.HazardComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if planarDistance(playerPos, pos) > hazard.Radius+playerRadius {
			hazard.Cooldown = 0
			continue
		}

		hazard.Cooldown -= deltaTime
		if hazard.Cooldown > hazardCooldownEpsilon {
			continue
		}
		hazard.Cooldown = hazard.Interval
		s.health.TakeDamage(hazard.Damage)
		if s.health.IsDead() {
			return
		}
	}
}
