package scenes

import (
	"fmt"
	"math/rand"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/entities"
	"github.com/decker502/farmrescue/pkg/systems"
)

// initSystems 创建玩家、HUD 和所有系统
// 系统之间的依赖通过构造函数注入
func (s *GameScene) initSystems(registry *systems.PrefabRegistry, spawnerConfig *config.SpawnerConfig, rng *rand.Rand) {
	em := s.entityManager
	cfg := s.levelConfig

	s.player, _ = entities.NewPlayerEntity(em, cfg.PlayerStart, cfg.PlayerHealth)
	s.panelEntity = entities.NewGamePlayPanelEntity(em)

	s.effectSystem = systems.NewEffectSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.transformSystem = systems.NewTransformSystem(em)
	s.wanderSystem = systems.NewWanderSystem(em, rng)

	s.itemSystem = systems.NewAnimalItemSystem(em, s.audioManager, s.effectSystem, s.questManager)
	s.carrySystem = systems.NewPlayerCarrySystem(em, s.itemSystem)
	s.checkpointSystem = systems.NewCheckpointSystem(em, s.carrySystem, s.audioManager, s.effectSystem)
	s.triggerSystem = systems.NewTriggerSystem(em, s.carrySystem, s.checkpointSystem)

	s.panelSystem = systems.NewGamePlayPanelSystem(em, s.panelEntity, s.audioManager)
	s.animationSystem = systems.NewPlayerAnimationSystem(em, s.player, systems.DefaultAnimationParams())
	s.healthSystem = systems.NewPlayerHealthSystem(em, s.player, s.animationSystem, s.panelSystem, s.audioManager)
	s.hazardSystem = systems.NewHazardSystem(em, s.player, s.healthSystem)

	s.levelSystem = systems.NewLevelSystem(s.questManager, s.panelSystem, s.settingsManager, s.level, cfg.TimeLimit, cfg.Reward)
	s.healthSystem.SetOnGameOver(s.levelSystem.MarkLost)
	s.levelSystem.SetPlayerLife(s.healthSystem)

	s.spawnerSystem = systems.NewAnimalSpawnerSystem(em, registry, s.questManager, s.settingsManager, rng, spawnerConfig.Yaw())

	s.renderSystem = systems.NewRenderSystem(em, systems.ViewLayout{
		PixelsPerMeter: PixelsPerMeter,
		OffsetY:        HUDHeight,
		FieldWidth:     WorldWidth,
		FieldDepth:     WorldDepth,
	})
	s.panelRenderSystem = systems.NewGamePlayPanelRenderSystem(s.panelSystem, s.questManager, ScreenWidth, ScreenHeight, HUDHeight)
	s.panelRenderSystem.SetTitle(fmt.Sprintf("Level %d  %s", s.level, cfg.Name))
}

// initLevel 按关卡配置布置场景并生成第一轮动物
func (s *GameScene) initLevel() {
	em := s.entityManager
	cfg := s.levelConfig

	entities.CreateSpawnPoints(em, cfg.SpawnPoints)
	s.spawnerSystem.InitializeSpawnPoints()

	for _, checkpointConfig := range cfg.Checkpoints {
		checkpoint := entities.NewCheckpointEntity(em, checkpointConfig)
		s.checkpointSystem.EnsureDropPoint(checkpoint)
	}
	for _, hazardConfig := range cfg.Hazards {
		entities.NewHazardEntity(em, hazardConfig)
	}

	s.spawnerSystem.SpawnAnimalsFromQuest()
	s.healthSystem.Initialize(cfg.PlayerHealth)
	s.levelSystem.Start()
	s.transformSystem.Update(0)
}
