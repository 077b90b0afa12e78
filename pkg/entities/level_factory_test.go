package entities

import (
	"testing"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// TestCreateSpawnPoints 生成点编号与配置顺序一致
func TestCreateSpawnPoints(t *testing.T) {
	em := ecs.NewEntityManager()
	points := []config.Vec3Config{{X: 1, Z: 1}, {X: 2, Z: 5}, {X: 9, Z: 3}}

	ids := CreateSpawnPoints(em, points)
	if len(ids) != len(points) {
		t.Fatalf("created %d spawn points, want %d", len(ids), len(points))
	}
	for i, id := range ids {
		point, _ := ecs.GetComponent[*components.SpawnPointComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if point.Index != i || transform.X != points[i].X || transform.Z != points[i].Z {
			t.Errorf("spawn point %d = index %d at (%.0f, %.0f)", i, point.Index, transform.X, transform.Z)
		}
	}

	if got := CreateSpawnPoints(em, nil); len(got) != 0 {
		t.Errorf("empty config created %d points", len(got))
	}
}

// TestNewPlayerEntity 玩家与挂载点
func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	player, attach := NewPlayerEntity(em, config.Vec3Config{X: 4, Y: 0, Z: 6}, 80)

	carrier, ok := ecs.GetComponent[*components.CarrierComponent](em, player)
	if !ok || carrier.AttachPoint != attach || carrier.IsCarrying() {
		t.Fatalf("carrier = %+v", carrier)
	}

	health, _ := ecs.GetComponent[*components.HealthComponent](em, player)
	if health.CurrentHealth != 80 || health.MaxHealth != 80 {
		t.Errorf("health = %d/%d, want 80/80", health.CurrentHealth, health.MaxHealth)
	}

	attachTransform, _ := ecs.GetComponent[*components.TransformComponent](em, attach)
	if attachTransform.Parent != player || attachTransform.LocalY != CarryAttachHeight {
		t.Errorf("attach = %+v", attachTransform)
	}
	if attachTransform.X != 4 || attachTransform.Y != CarryAttachHeight || attachTransform.Z != 6 {
		t.Errorf("attach world position = (%.1f, %.1f, %.1f)", attachTransform.X, attachTransform.Y, attachTransform.Z)
	}
}

// TestNewCheckpointEntity 配置了放置点时创建子实体
func TestNewCheckpointEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	withDrop := NewCheckpointEntity(em, config.CheckpointConfig{
		Position:  config.Vec3Config{X: 10, Z: 10},
		DropPoint: &config.Vec3Config{X: 1, Z: -1},
		DropYaw:   90,
		Radius:    2,
		DropSound: "animal_drop",
	})
	cp, _ := ecs.GetComponent[*components.CheckpointComponent](em, withDrop)
	if cp.DropPoint == ecs.InvalidEntity || cp.Radius != 2 || cp.DropSound != "animal_drop" {
		t.Fatalf("checkpoint = %+v", cp)
	}
	drop, _ := ecs.GetComponent[*components.TransformComponent](em, cp.DropPoint)
	if drop.Parent != withDrop || drop.X != 11 || drop.Z != 9 || drop.Yaw != 90 {
		t.Errorf("drop point = %+v", drop)
	}

	withoutDrop := NewCheckpointEntity(em, config.CheckpointConfig{Radius: 1.5})
	cp, _ = ecs.GetComponent[*components.CheckpointComponent](em, withoutDrop)
	if cp.DropPoint != ecs.InvalidEntity {
		t.Errorf("drop point should be created lazily, got %d", cp.DropPoint)
	}
}

// TestNewHazardEntity 危险区域组件
func TestNewHazardEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewHazardEntity(em, config.HazardConfig{
		Position: config.Vec3Config{X: 5, Z: 5},
		Radius:   1.2,
		Damage:   15,
		Interval: 0.5,
	})

	hazard, ok := ecs.GetComponent[*components.HazardComponent](em, id)
	if !ok || hazard.Radius != 1.2 || hazard.Damage != 15 || hazard.Interval != 0.5 || hazard.Cooldown != 0 {
		t.Errorf("hazard = %+v", hazard)
	}
}

// TestNewEffectEntity 特效带有限生命周期
func TestNewEffectEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewEffectEntity(em, "drop_sparkle", 1, 2, 3)

	effect, _ := ecs.GetComponent[*components.EffectComponent](em, id)
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if effect.Name != "drop_sparkle" || !ok || lifetime.MaxLifetime <= 0 {
		t.Errorf("effect = %+v, lifetime = %+v", effect, lifetime)
	}
}
