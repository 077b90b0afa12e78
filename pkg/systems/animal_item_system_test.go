package systems

import (
	"testing"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/entities"
	"github.com/decker502/farmrescue/pkg/types"
)

// itemTestScene 动物收集物测试场景
type itemTestScene struct {
	em       *ecs.EntityManager
	items    *AnimalItemSystem
	sound    *recordingSound
	effects  *recordingEffects
	progress *recordingProgress
	animal   ecs.EntityID
	attach   ecs.EntityID
	anchor   ecs.EntityID
}

func newItemTestScene(animalType types.AnimalType) *itemTestScene {
	em := ecs.NewEntityManager()
	scene := &itemTestScene{
		em:       em,
		sound:    &recordingSound{},
		effects:  &recordingEffects{},
		progress: &recordingProgress{},
	}
	scene.items = NewAnimalItemSystem(em, scene.sound, scene.effects, scene.progress)
	scene.animal = entities.NewAnimalEntity(em, newTestTemplate(animalType.String()), animalType, entities.AnimalSpawnInfo{X: 1, Z: 1})

	_, scene.attach = entities.NewPlayerEntity(em, config.Vec3Config{X: 3, Z: 4}, 100)

	scene.anchor = em.CreateEntity()
	em.AddComponent(scene.anchor, &components.TransformComponent{X: 10, Y: 0.5, Z: -2, Yaw: 90})
	return scene
}

func (s *itemTestScene) state(t *testing.T) components.AnimalState {
	t.Helper()
	state, ok := s.items.State(s.animal)
	if !ok {
		t.Fatal("animal has no item component")
	}
	return state
}

// TestAnimalItemLifecycle 完整的 Idle -> Carried -> Delivered 流程
func TestAnimalItemLifecycle(t *testing.T) {
	scene := newItemTestScene(types.AnimalSheep)

	if scene.state(t) != components.AnimalIdle {
		t.Fatalf("initial state = %v, want Idle", scene.state(t))
	}

	var ok bool
	captureLog(t, func() {
		ok = scene.items.Pickup(scene.animal, scene.attach)
	})
	if !ok || scene.state(t) != components.AnimalCarried {
		t.Fatalf("after pickup state = %v (ok=%v), want Carried", scene.state(t), ok)
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](scene.em, scene.animal)
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](scene.em, scene.animal)
	wander, _ := ecs.GetComponent[*components.WanderComponent](scene.em, scene.animal)
	if transform.Parent != scene.attach || transform.LocalX != 0 || transform.LocalY != 0 || transform.LocalZ != 0 {
		t.Errorf("animal should be attached at attach point origin, got %+v", transform)
	}
	if transform.X != 3 || transform.Y != entities.CarryAttachHeight || transform.Z != 4 {
		t.Errorf("carried animal at (%.1f, %.1f, %.1f)", transform.X, transform.Y, transform.Z)
	}
	if body.CollisionEnabled || !body.Kinematic || wander.Enabled {
		t.Errorf("carried animal body=%+v wander.Enabled=%v", body, wander.Enabled)
	}
	if len(scene.sound.played) != 1 || scene.sound.played[0] != config.DefaultCollectSound {
		t.Errorf("sounds = %v, want one collect sound", scene.sound.played)
	}
	if len(scene.effects.names) != 1 || scene.effects.names[0] != config.DefaultCollectEffect {
		t.Errorf("effects = %v, want one collect effect", scene.effects.names)
	}
	if len(scene.progress.collected) != 0 {
		t.Error("pickup must not report progress")
	}

	captureLog(t, func() {
		ok = scene.items.Drop(scene.animal, scene.anchor)
	})
	if !ok || scene.state(t) != components.AnimalDelivered {
		t.Fatalf("after drop state = %v (ok=%v), want Delivered", scene.state(t), ok)
	}
	if transform.HasParent() {
		t.Error("delivered animal should be detached")
	}
	if transform.X != 10 || transform.Y != 0.5 || transform.Z != -2 || transform.Yaw != 90 {
		t.Errorf("delivered animal at %+v, want anchor pose", transform)
	}
	if !body.CollisionEnabled || !body.Kinematic {
		t.Errorf("delivered body = %+v, want collision on and kinematic", body)
	}
	if len(scene.progress.collected) != 1 || scene.progress.collected[0] != types.AnimalSheep {
		t.Errorf("progress = %v, want [Sheep]", scene.progress.collected)
	}
}

// TestAnimalItemInvalidTransitions 非法迁移被忽略且没有副作用
func TestAnimalItemInvalidTransitions(t *testing.T) {
	scene := newItemTestScene(types.AnimalCow)

	if scene.items.Drop(scene.animal, scene.anchor) {
		t.Error("drop from Idle should be ignored")
	}
	if len(scene.progress.collected) != 0 {
		t.Error("ignored drop must not report progress")
	}

	captureLog(t, func() {
		scene.items.Pickup(scene.animal, scene.attach)
	})
	if scene.items.Pickup(scene.animal, scene.attach) {
		t.Error("second pickup should be ignored")
	}
	if len(scene.sound.played) != 1 {
		t.Errorf("sounds = %v, want exactly one", scene.sound.played)
	}

	captureLog(t, func() {
		scene.items.Drop(scene.animal, scene.anchor)
	})
	if scene.items.Drop(scene.animal, scene.anchor) {
		t.Error("second drop should be ignored")
	}
	if scene.items.Pickup(scene.animal, scene.attach) {
		t.Error("pickup of delivered animal should be ignored")
	}
	if len(scene.progress.collected) != 1 {
		t.Errorf("progress reported %d times, want 1", len(scene.progress.collected))
	}
}

// TestAnimalItemReset 重置后回到 Idle 并可再次捡起
func TestAnimalItemReset(t *testing.T) {
	scene := newItemTestScene(types.AnimalPig)
	captureLog(t, func() {
		scene.items.Pickup(scene.animal, scene.attach)
		scene.items.Drop(scene.animal, scene.anchor)
	})
	visibility, _ := ecs.GetComponent[*components.VisibilityComponent](scene.em, scene.animal)
	visibility.Active = false

	if !scene.items.Reset(scene.animal) {
		t.Fatal("Reset should succeed")
	}
	if scene.state(t) != components.AnimalIdle {
		t.Errorf("state after reset = %v, want Idle", scene.state(t))
	}
	body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](scene.em, scene.animal)
	wander, _ := ecs.GetComponent[*components.WanderComponent](scene.em, scene.animal)
	if !body.CollisionEnabled || body.Kinematic || !wander.Enabled {
		t.Errorf("reset body=%+v wander.Enabled=%v", body, wander.Enabled)
	}
	if !visibility.Active {
		t.Error("animal should be visible again after reset")
	}

	captureLog(t, func() {
		if !scene.items.Pickup(scene.animal, scene.attach) {
			t.Error("pickup after reset should succeed")
		}
	})
}

// TestAnimalItemResetWhileCarried 背着的动物不能重置，玩家仍可正常送达
func TestAnimalItemResetWhileCarried(t *testing.T) {
	em := ecs.NewEntityManager()
	items := NewAnimalItemSystem(em, nil, nil, nil)
	carry := NewPlayerCarrySystem(em, items)
	player, _ := entities.NewPlayerEntity(em, config.Vec3Config{}, 100)
	first := entities.NewAnimalEntity(em, newTestTemplate("Cow"), types.AnimalCow, entities.AnimalSpawnInfo{X: 1})
	second := entities.NewAnimalEntity(em, newTestTemplate("Pig"), types.AnimalPig, entities.AnimalSpawnInfo{X: 2})
	anchor := em.CreateEntity()
	em.AddComponent(anchor, &components.TransformComponent{X: 5})

	captureLog(t, func() {
		if !carry.TryPickup(player, first) {
			t.Fatal("pickup failed")
		}
		if items.Reset(first) {
			t.Error("Reset of a carried animal should be ignored")
		}
		if state, _ := items.State(first); state != components.AnimalCarried {
			t.Errorf("state after ignored reset = %v, want Carried", state)
		}
		if carry.TryPickup(player, second) {
			t.Error("second pickup should still be refused")
		}
		if !carry.DropAnimalAtCheckpoint(player, anchor) {
			t.Error("drop after ignored reset should succeed")
		}
		if !carry.TryPickup(player, second) {
			t.Error("pickup after delivery should succeed")
		}
	})
}

// TestAnimalItemWithoutCollaborators 没有音效和进度回调时仍能完成流程
func TestAnimalItemWithoutCollaborators(t *testing.T) {
	scene := newItemTestScene(types.AnimalDuck)
	items := NewAnimalItemSystem(scene.em, nil, nil, nil)

	captureLog(t, func() {
		if !items.Pickup(scene.animal, scene.attach) {
			t.Error("pickup failed")
		}
		if !items.Drop(scene.animal, scene.anchor) {
			t.Error("drop failed")
		}
	})

	if _, ok := items.State(scene.em.CreateEntity()); ok {
		t.Error("State of plain entity should report !ok")
	}
	if items.Pickup(scene.animal, ecs.InvalidEntity) {
		t.Error("pickup onto missing attach point should fail")
	}
}
