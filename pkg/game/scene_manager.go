package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定关卡的场景，避免 game 包依赖 scenes 包
type SceneFactory func(level int) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadLevel to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 创建并切换到指定关卡的场景
// 创建失败时保留当前场景
//
// 返回: 是否切换成功
func (sm *SceneManager) LoadLevel(level int) bool {
	log.Printf("[SceneManager] Loading level %d", level)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: SceneFactory is not set")
		return false
	}

	newScene, err := sm.sceneFactory(level)
	if err != nil || newScene == nil {
		log.Printf("[SceneManager] Error: Failed to create level %d: %v", level, err)
		return false
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] Switched to level %d", level)
	return true
}

// SaveOnExit 让当前场景在退出前保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
