package entities

import (
	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/samber/lo"
)

// 玩家默认参数
const (
	PlayerMoveSpeed   = 4.0
	PlayerRadius      = 0.6
	CarryAttachHeight = 1.2 // 挂载点在玩家头顶的高度
)

// CreateSpawnPoints 按配置顺序创建生成点实体，编号从 0 开始
func CreateSpawnPoints(em *ecs.EntityManager, points []config.Vec3Config) []ecs.EntityID {
	return lo.Map(points, func(point config.Vec3Config, i int) ecs.EntityID {
		id := em.CreateEntity()
		em.AddComponent(id, &components.TransformComponent{X: point.X, Y: point.Y, Z: point.Z})
		em.AddComponent(id, &components.SpawnPointComponent{Index: i})
		return id
	})
}

// NewPlayerEntity 创建玩家实体及其头顶的动物挂载点
//
// 返回: 玩家实体ID, 挂载点实体ID
func NewPlayerEntity(em *ecs.EntityManager, start config.Vec3Config, maxHealth int) (ecs.EntityID, ecs.EntityID) {
	player := em.CreateEntity()
	em.AddComponent(player, &components.TransformComponent{X: start.X, Y: start.Y, Z: start.Z})
	em.AddComponent(player, &components.PlayerComponent{
		MoveSpeed: PlayerMoveSpeed,
		Radius:    PlayerRadius,
	})
	em.AddComponent(player, &components.HealthComponent{
		CurrentHealth: maxHealth,
		MaxHealth:     maxHealth,
	})
	em.AddComponent(player, components.NewAnimatorComponent())
	em.AddComponent(player, &components.ShapeComponent{
		Kind:   components.ShapeSquare,
		Radius: PlayerRadius,
		R:      66,
		G:      135,
		B:      245,
		Label:  "Player",
	})

	attach := em.CreateEntity()
	em.AddComponent(attach, &components.TransformComponent{
		X:      start.X,
		Y:      start.Y + CarryAttachHeight,
		Z:      start.Z,
		Parent: player,
		LocalY: CarryAttachHeight,
	})

	em.AddComponent(player, &components.CarrierComponent{AttachPoint: attach})
	return player, attach
}

// NewCheckpointEntity 创建检查点实体
// 配置了 dropPoint 时同时创建放置点子实体，否则由 CheckpointSystem 在使用前补建
func NewCheckpointEntity(em *ecs.EntityManager, cfg config.CheckpointConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{X: cfg.Position.X, Y: cfg.Position.Y, Z: cfg.Position.Z})

	checkpoint := &components.CheckpointComponent{
		DropSound:  cfg.DropSound,
		DropEffect: cfg.DropEffect,
		Radius:     cfg.Radius,
	}
	if cfg.DropPoint != nil {
		checkpoint.DropPoint = NewDropPointEntity(em, id, cfg.DropPoint.X, cfg.DropPoint.Y, cfg.DropPoint.Z, cfg.DropYaw)
	}
	em.AddComponent(id, checkpoint)

	em.AddComponent(id, &components.ShapeComponent{
		Kind:   components.ShapeRing,
		Radius: cfg.Radius,
		R:      240,
		G:      200,
		B:      60,
		Label:  "Checkpoint",
	})
	return id
}

// NewDropPointEntity 创建挂在检查点下的放置点
func NewDropPointEntity(em *ecs.EntityManager, checkpoint ecs.EntityID, localX, localY, localZ, yaw float64) ecs.EntityID {
	id := em.CreateEntity()
	transform := &components.TransformComponent{
		Parent: checkpoint,
		LocalX: localX,
		LocalY: localY,
		LocalZ: localZ,
		Yaw:    yaw,
	}
	if parent, ok := ecs.GetComponent[*components.TransformComponent](em, checkpoint); ok {
		transform.X = parent.X + localX
		transform.Y = parent.Y + localY
		transform.Z = parent.Z + localZ
	}
	em.AddComponent(id, transform)
	return id
}

// NewEffectEntity 创建一次性特效实体，到期后由 LifetimeSystem 删除
func NewEffectEntity(em *ecs.EntityManager, name string, x, y, z float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{X: x, Y: y, Z: z})
	em.AddComponent(id, &components.EffectComponent{Name: name, MaxRadius: 1.2})
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 0.6})
	return id
}

// NewGamePlayPanelEntity 创建 HUD 面板实体
func NewGamePlayPanelEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.GamePlayPanelComponent{})
	return id
}

// NewHazardEntity 创建危险区域实体
func NewHazardEntity(em *ecs.EntityManager, cfg config.HazardConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{X: cfg.Position.X, Y: cfg.Position.Y, Z: cfg.Position.Z})
	em.AddComponent(id, &components.HazardComponent{
		Radius:   cfg.Radius,
		Damage:   cfg.Damage,
		Interval: cfg.Interval,
	})
	em.AddComponent(id, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Radius: cfg.Radius,
		R:      200,
		G:      60,
		B:      40,
		Label:  "Beehive",
	})
	return id
}
