package systems

import (
	"log"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// AnimalItemSystem 管理动物收集物的状态迁移
//
//	Idle --Pickup--> Carried --Drop--> Delivered --Reset--> Idle
//
// 非法迁移（重复捡起、未捡起就放下等）直接忽略，不报告错误。
// "只有玩家能捡、一次只能背一只" 由调用方（PlayerCarrySystem）保证。
type AnimalItemSystem struct {
	entityManager *ecs.EntityManager
	soundPlayer   SoundPlayer
	effects       EffectSpawner
	progress      ProgressReporter
}

// NewAnimalItemSystem 创建动物收集物系统
// soundPlayer、effects、progress 都可以为 nil
func NewAnimalItemSystem(em *ecs.EntityManager, soundPlayer SoundPlayer, effects EffectSpawner, progress ProgressReporter) *AnimalItemSystem {
	return &AnimalItemSystem{
		entityManager: em,
		soundPlayer:   soundPlayer,
		effects:       effects,
		progress:      progress,
	}
}

// State 返回动物当前状态
func (s *AnimalItemSystem) State(animal ecs.EntityID) (components.AnimalState, bool) {
	item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, animal)
	if !ok {
		return components.AnimalIdle, false
	}
	return item.State(), true
}

// Pickup 将动物挂到搬运者的挂载点上
//
// 副作用：关闭碰撞与自主运动，挂载到 attachPoint 的本地原点，
// 播放一次捡起音效和特效。不通知任务进度。
//
// 返回: 是否发生了迁移
func (s *AnimalItemSystem) Pickup(animal, attachPoint ecs.EntityID) bool {
	item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, animal)
	if !ok || !item.CanBePickedUp() {
		return false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, animal)
	if !ok {
		return false
	}
	attach, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, attachPoint)
	if !ok {
		log.Printf("[AnimalItemSystem] Warning: attach point %d has no transform, pickup ignored", attachPoint)
		return false
	}

	item.PickedUp = true

	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, animal); ok {
		body.CollisionEnabled = false
		body.Kinematic = true
	}
	if wander, ok := ecs.GetComponent[*components.WanderComponent](s.entityManager, animal); ok {
		wander.Enabled = false
		wander.HasTarget = false
	}

	transform.AttachTo(attachPoint)
	transform.X, transform.Y, transform.Z = attach.X, attach.Y, attach.Z

	playSound(s.soundPlayer, item.CollectSound)
	spawnEffect(s.effects, item.CollectEffect, transform.X, transform.Y, transform.Z)

	log.Printf("[AnimalItemSystem] Picked up %s (entity %d)", item.AnimalType(), animal)
	return true
}

// Drop 把背着的动物放到检查点的放置点上
//
// 副作用：脱离搬运者，移动到 anchor 的位置和朝向，重新开启碰撞，
// 保持运动学状态（不恢复自主运动），标记为已送达并通知任务进度一次。
//
// 返回: 是否发生了迁移
func (s *AnimalItemSystem) Drop(animal, anchor ecs.EntityID) bool {
	item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, animal)
	if !ok || !item.PickedUp {
		return false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, animal)
	if !ok {
		return false
	}
	target, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, anchor)
	if !ok {
		log.Printf("[AnimalItemSystem] Warning: drop anchor %d has no transform, drop ignored", anchor)
		return false
	}

	transform.Detach()
	transform.X, transform.Y, transform.Z = target.X, target.Y, target.Z
	transform.Yaw = target.Yaw

	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, animal); ok {
		body.CollisionEnabled = true
		body.Kinematic = true
	}

	item.PickedUp = false
	item.Collected = true

	if s.progress != nil {
		s.progress.OnAnimalCollected(item.AnimalType())
	}

	log.Printf("[AnimalItemSystem] Delivered %s (entity %d)", item.AnimalType(), animal)
	return true
}

// Reset 把动物恢复到初始状态（重开关卡时使用）
//
// 清除两个标记位，恢复碰撞和自主运动，脱离父实体并重新激活。
// 背着的动物不能重置，否则搬运者会一直占着这只动物。
func (s *AnimalItemSystem) Reset(animal ecs.EntityID) bool {
	item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, animal)
	if !ok {
		return false
	}
	if item.PickedUp {
		log.Printf("[AnimalItemSystem] Warning: entity %d is being carried, reset ignored", animal)
		return false
	}

	item.PickedUp = false
	item.Collected = false

	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, animal); ok {
		transform.Detach()
	}
	if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, animal); ok {
		body.CollisionEnabled = true
		body.Kinematic = false
	}
	if wander, ok := ecs.GetComponent[*components.WanderComponent](s.entityManager, animal); ok {
		wander.Enabled = wander.Speed > 0
		wander.HasTarget = false
	}
	if visibility, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, animal); ok {
		visibility.Active = true
	}
	return true
}
