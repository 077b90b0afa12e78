package systems

import (
	"strings"
	"testing"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
)

func movePlayer(em *ecs.EntityManager, player ecs.EntityID, x, z float64) {
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, player)
	transform.X, transform.Z = x, z
}

// TestTriggerPickupAndDeliver 走到动物身边捡起，走进检查点放下
func TestTriggerPickupAndDeliver(t *testing.T) {
	scene := newCarryTestScene(nil)
	triggers := NewTriggerSystem(scene.em, scene.carry, scene.checkpoints)

	captureLog(t, func() {
		triggers.Update(0.016)
	})
	if scene.carry.HasCarriedAnimal(scene.player) {
		t.Fatal("player far from animals should not pick up")
	}

	movePlayer(scene.em, scene.player, 5, 0)
	captureLog(t, func() {
		triggers.Update(0.016)
	})
	if scene.carry.CarriedAnimal(scene.player) != scene.animals[0] {
		t.Fatalf("expected to carry animal %d", scene.animals[0])
	}

	// 背着动物时碰到另一只不会换
	movePlayer(scene.em, scene.player, 10, 0)
	captureLog(t, func() {
		triggers.Update(0.016)
	})
	if scene.carry.CarriedAnimal(scene.player) != scene.animals[0] {
		t.Error("carried animal should not change")
	}

	movePlayer(scene.em, scene.player, 20, 20)
	captureLog(t, func() {
		triggers.Update(0.016)
	})
	if scene.carry.HasCarriedAnimal(scene.player) {
		t.Error("animal should be dropped at checkpoint")
	}
	if len(scene.progress.collected) != 1 {
		t.Errorf("progress = %v, want one delivery", scene.progress.collected)
	}
}

// TestTriggerCheckpointEdge 停留在检查点内只触发一次
func TestTriggerCheckpointEdge(t *testing.T) {
	scene := newCarryTestScene(nil)
	triggers := NewTriggerSystem(scene.em, scene.carry, scene.checkpoints)

	movePlayer(scene.em, scene.player, 20, 20)
	output := captureLog(t, func() {
		triggers.Update(0.016)
		triggers.Update(0.016)
		triggers.Update(0.016)
	})

	cp, _ := ecs.GetComponent[*components.CheckpointComponent](scene.em, scene.checkpoint)
	if !cp.PlayerInside {
		t.Error("PlayerInside should be true")
	}
	if n := strings.Count(output, "needs to carry an animal"); n != 1 {
		t.Errorf("OnPlayerEnter called %d times, want 1", n)
	}

	movePlayer(scene.em, scene.player, 0, 0)
	triggers.Update(0.016)
	if cp.PlayerInside {
		t.Error("PlayerInside should reset after leaving")
	}
}

// TestTriggerDisabledPlayer 被禁用的玩家不触发任何交互
func TestTriggerDisabledPlayer(t *testing.T) {
	scene := newCarryTestScene(nil)
	triggers := NewTriggerSystem(scene.em, scene.carry, scene.checkpoints)

	playerComp, _ := ecs.GetComponent[*components.PlayerComponent](scene.em, scene.player)
	playerComp.Disabled = true
	movePlayer(scene.em, scene.player, 5, 0)
	triggers.Update(0.016)

	if scene.carry.HasCarriedAnimal(scene.player) {
		t.Error("disabled player should not pick up")
	}
}

// TestTriggerIgnoresDeliveredAnimals 已送达的动物不能再次捡起
func TestTriggerIgnoresDeliveredAnimals(t *testing.T) {
	scene := newCarryTestScene(&config.Vec3Config{X: -15, Z: -20})
	triggers := NewTriggerSystem(scene.em, scene.carry, scene.checkpoints)

	captureLog(t, func() {
		scene.carry.TryPickup(scene.player, scene.animals[0])
		scene.checkpoints.OnPlayerEnter(scene.checkpoint, scene.player)
	})

	// 放置点在 (5, 0)，正好与第一只动物的出生点重合
	movePlayer(scene.em, scene.player, 5, 0)
	captureLog(t, func() {
		triggers.Update(0.016)
	})
	if scene.carry.HasCarriedAnimal(scene.player) {
		t.Error("delivered animal should not be picked up again")
	}
}
