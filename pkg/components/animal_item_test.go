package components

import (
	"testing"

	"github.com/decker502/farmrescue/pkg/types"
)

// TestAnimalItemState 测试标记位到状态的映射
func TestAnimalItemState(t *testing.T) {
	tests := []struct {
		name      string
		pickedUp  bool
		collected bool
		expected  AnimalState
		canPick   bool
	}{
		{name: "空闲", expected: AnimalIdle, canPick: true},
		{name: "背着", pickedUp: true, expected: AnimalCarried},
		{name: "已送达", collected: true, expected: AnimalDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewAnimalItemComponent(types.AnimalFox)
			item.PickedUp = tt.pickedUp
			item.Collected = tt.collected

			if item.State() != tt.expected {
				t.Errorf("State() = %v, want %v", item.State(), tt.expected)
			}
			if item.CanBePickedUp() != tt.canPick {
				t.Errorf("CanBePickedUp() = %v, want %v", item.CanBePickedUp(), tt.canPick)
			}
			if item.AnimalType() != types.AnimalFox {
				t.Errorf("AnimalType() = %v, want Fox", item.AnimalType())
			}
		})
	}
}

func TestAnimalStateString(t *testing.T) {
	if AnimalCarried.String() != "Carried" || AnimalState(9).String() != "Unknown" {
		t.Errorf("unexpected names: %s, %s", AnimalCarried, AnimalState(9))
	}
}

// TestAnimatorTriggers 触发器读取一次后清除
func TestAnimatorTriggers(t *testing.T) {
	animator := NewAnimatorComponent()
	if animator.ConsumeTrigger("Die") {
		t.Error("unset trigger should not fire")
	}
	animator.SetTrigger("Die")
	if !animator.ConsumeTrigger("Die") {
		t.Error("trigger should fire once")
	}
	if animator.ConsumeTrigger("Die") {
		t.Error("trigger should be cleared after consume")
	}
}

func TestTransformAttachDetach(t *testing.T) {
	transform := &TransformComponent{X: 4, LocalX: 2}
	transform.AttachTo(7)
	if !transform.HasParent() || transform.LocalX != 0 {
		t.Errorf("AttachTo: %+v", transform)
	}
	transform.Detach()
	if transform.HasParent() || transform.X != 4 {
		t.Errorf("Detach: %+v", transform)
	}
}
