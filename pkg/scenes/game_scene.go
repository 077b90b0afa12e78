// Package scenes 包含游戏场景的实现
package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/game"
	"github.com/decker502/farmrescue/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// 屏幕布局
	ScreenWidth    = 800
	ScreenHeight   = 640
	HUDHeight      = 40
	PixelsPerMeter = 40.0

	// 场地尺寸（米），与 levels.yaml 的坐标范围一致
	WorldWidth = 20.0
	WorldDepth = 15.0

	// 固定时间步长
	FixedDeltaTime = 1.0 / 60.0
)

// GameScene 一局游戏：加载关卡、驱动所有系统、渲染俯视图
type GameScene struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	levelConfig *config.LevelConfig
	level       int

	entityManager *ecs.EntityManager
	player        ecs.EntityID
	panelEntity   ecs.EntityID

	questManager *game.QuestManager

	spawnerSystem    *systems.AnimalSpawnerSystem
	itemSystem       *systems.AnimalItemSystem
	carrySystem      *systems.PlayerCarrySystem
	checkpointSystem *systems.CheckpointSystem
	triggerSystem    *systems.TriggerSystem
	transformSystem  *systems.TransformSystem
	wanderSystem     *systems.WanderSystem
	effectSystem     *systems.EffectSystem
	lifetimeSystem   *systems.LifetimeSystem
	animationSystem  *systems.PlayerAnimationSystem
	panelSystem      *systems.GamePlayPanelSystem
	healthSystem     *systems.PlayerHealthSystem
	hazardSystem     *systems.HazardSystem
	levelSystem      *systems.LevelSystem

	renderSystem      *systems.RenderSystem
	panelRenderSystem *systems.GamePlayPanelRenderSystem

	input InputSource
}

// NewGameScene 创建指定关卡的游戏场景
//
// 参数:
//   - resources: 已加载的资源管理器
//   - gameState: 共享的设置、进度和音频
//   - sceneManager: 场景管理器（用于切换到下一关，可为 nil）
//   - level: 关卡编号
func NewGameScene(resources *game.ResourceManager, gameState *game.GameState, sceneManager *game.SceneManager, level int) (*GameScene, error) {
	levelConfig, err := resources.GetLevelConfig(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create level %d: %w", level, err)
	}

	scene := &GameScene{
		sceneManager:    sceneManager,
		settingsManager: gameState.GetSettingsManager(),
		audioManager:    gameState.GetAudioManager(),
		levelConfig:     levelConfig,
		level:           level,
		entityManager:   ecs.NewEntityManager(),
		questManager:    game.NewQuestManager(&levelConfig.Quest),
		input:           KeyboardInput{},
	}

	spawnerConfig := resources.GetSpawnerConfig()
	if spawnerConfig == nil {
		spawnerConfig = config.DefaultSpawnerConfig()
	}
	scene.initSystems(resources.GetPrefabRegistry(), spawnerConfig, newRand(spawnerConfig.Seed))
	scene.initLevel()

	log.Printf("[GameScene] Level %d '%s' ready: %d spawn points, %d animals",
		level, levelConfig.Name, scene.spawnerSystem.SpawnPointCount(), len(scene.spawnerSystem.SpawnedAnimals()))
	return scene, nil
}

// newRand 种子为 0 时按时间播种
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SetInputSource 替换输入来源（测试中使用脚本输入）
func (s *GameScene) SetInputSource(input InputSource) {
	s.input = input
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) {
	var input InputState
	if s.input != nil {
		input = s.input.Poll()
	}
	s.step(input, deltaTime)
}

// step 根据输入推进一帧游戏逻辑
func (s *GameScene) step(input InputState, deltaTime float64) {
	if input.Restart {
		s.Restart()
		return
	}
	if input.NextLevel && s.levelSystem.Result() == systems.LevelWon {
		s.loadNextLevel()
		return
	}

	if !s.levelSystem.IsPaused() {
		s.movePlayer(input, deltaTime)
		s.wanderSystem.Update(deltaTime)
		s.transformSystem.Update(deltaTime)
		s.triggerSystem.Update(deltaTime)
		s.hazardSystem.Update(deltaTime)
		s.levelSystem.Update(deltaTime)
	}

	s.healthSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// loadNextLevel 切换到下一关
func (s *GameScene) loadNextLevel() {
	if s.sceneManager == nil {
		return
	}
	if !s.sceneManager.LoadLevel(s.level + 1) {
		log.Printf("[GameScene] Warning: Failed to load level %d", s.level+1)
	}
}

// Restart 重新开始本关：清空任务进度、重新生成动物、复位玩家和计时
func (s *GameScene) Restart() {
	log.Printf("[GameScene] Restarting level %d", s.level)

	s.carrySystem.ReleaseCarried(s.player)
	s.questManager.Reset()
	s.spawnerSystem.RespawnAnimals()
	s.entityManager.RemoveMarkedEntities()
	s.resetPlayer()
	s.healthSystem.Initialize(s.levelConfig.PlayerHealth)
	s.levelSystem.Start()
}

// Draw 渲染场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.panelRenderSystem.Draw(screen)
}

// SaveOnExit 退出前保存设置和进度
func (s *GameScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
		return false
	}
	if err := s.settingsManager.SaveProgress(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save progress: %v", err)
		return false
	}
	return true
}

// Level 返回关卡编号
func (s *GameScene) Level() int {
	return s.level
}

// Result 返回关卡结果
func (s *GameScene) Result() systems.LevelResult {
	return s.levelSystem.Result()
}

// QuestManager 返回本关的任务管理器
func (s *GameScene) QuestManager() *game.QuestManager {
	return s.questManager
}

// EntityManager 返回本关的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Player 返回玩家实体
func (s *GameScene) Player() ecs.EntityID {
	return s.player
}
