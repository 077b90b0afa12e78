package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	level        int
	saved        bool
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// SaveOnExit records that the scene was asked to save.
func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

// TestSceneManagerUpdateDraw verifies that Update and Draw reach the current scene.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()

	// No scene: should not panic
	sm.Update(0.016)
	sm.Draw(nil)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%.3f", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
	if sm.GetCurrentScene() != mockScene {
		t.Error("GetCurrentScene should return the active scene")
	}
}

// TestSceneManagerLoadLevel 通过工厂函数切换关卡
func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager()
	if sm.LoadLevel(1) {
		t.Error("LoadLevel without factory should fail")
	}

	sm.SetSceneFactory(func(level int) (Scene, error) {
		if level > 3 {
			return nil, errors.New("level not configured")
		}
		return &MockScene{level: level}, nil
	})

	if !sm.LoadLevel(2) {
		t.Fatal("LoadLevel(2) should succeed")
	}
	current := sm.GetCurrentScene().(*MockScene)
	if current.level != 2 {
		t.Errorf("current level = %d, want 2", current.level)
	}

	if sm.LoadLevel(9) {
		t.Error("LoadLevel(9) should fail")
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed load should keep the current scene")
	}

	if !sm.SaveOnExit() || !current.saved {
		t.Error("SaveOnExit should reach a Saveable scene")
	}
}
