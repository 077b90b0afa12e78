package systems

import (
	"log"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/entities"
)

// CheckpointSystem 检查点：玩家在这里放下动物得分
type CheckpointSystem struct {
	entityManager *ecs.EntityManager
	carry         *PlayerCarrySystem
	soundPlayer   SoundPlayer
	effects       EffectSpawner
}

// NewCheckpointSystem 创建检查点系统
func NewCheckpointSystem(em *ecs.EntityManager, carry *PlayerCarrySystem, soundPlayer SoundPlayer, effects EffectSpawner) *CheckpointSystem {
	return &CheckpointSystem{
		entityManager: em,
		carry:         carry,
		soundPlayer:   soundPlayer,
		effects:       effects,
	}
}

// EnsureDropPoint 返回检查点的放置点，未配置时在检查点原点创建一个
func (s *CheckpointSystem) EnsureDropPoint(checkpoint ecs.EntityID) ecs.EntityID {
	cp, ok := ecs.GetComponent[*components.CheckpointComponent](s.entityManager, checkpoint)
	if !ok {
		return ecs.InvalidEntity
	}
	if cp.DropPoint != ecs.InvalidEntity && s.entityManager.Exists(cp.DropPoint) {
		return cp.DropPoint
	}

	cp.DropPoint = entities.NewDropPointEntity(s.entityManager, checkpoint, 0, 0, 0, 0)
	return cp.DropPoint
}

// GetDropPoint 返回检查点的放置点
func (s *CheckpointSystem) GetDropPoint(checkpoint ecs.EntityID) ecs.EntityID {
	return s.EnsureDropPoint(checkpoint)
}

// OnPlayerEnter 玩家进入检查点
// 玩家背着动物时放下动物、播放音效和特效
//
// 返回: 是否放下了动物
func (s *CheckpointSystem) OnPlayerEnter(checkpoint, player ecs.EntityID) bool {
	if player == ecs.InvalidEntity {
		return false
	}
	cp, ok := ecs.GetComponent[*components.CheckpointComponent](s.entityManager, checkpoint)
	if !ok {
		return false
	}

	if !s.carry.HasCarriedAnimal(player) {
		log.Printf("[CheckpointSystem] Player needs to carry an animal to drop at checkpoint %d", checkpoint)
		return false
	}

	dropPoint := s.EnsureDropPoint(checkpoint)
	if !s.carry.DropAnimalAtCheckpoint(player, dropPoint) {
		return false
	}

	playSound(s.soundPlayer, cp.DropSound)
	if anchor, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, dropPoint); ok {
		spawnEffect(s.effects, cp.DropEffect, anchor.X, anchor.Y, anchor.Z)
	}

	log.Printf("[CheckpointSystem] Animal dropped at checkpoint %d", checkpoint)
	return true
}
