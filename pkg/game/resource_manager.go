package game

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/systems"
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/samber/lo"
)

// 资源路径（相对于资源文件系统根目录）
const (
	SpawnerConfigPath = "assets/config/spawner.yaml"
	LevelsConfigPath  = "assets/config/levels.yaml"
	assetsRoot        = "assets"
)

// ResourceManager 加载并缓存关卡配置、生成器配置和预制体注册表
//
// 所有场景共享同一份配置，只在启动时加载一次。
type ResourceManager struct {
	resources fs.FS // 根目录包含 assets/

	spawnerConfig *config.SpawnerConfig
	levelsConfig  *config.LevelsConfig
	prefabs       *systems.PrefabRegistry
}

// NewResourceManager 创建资源管理器
// resources 的根目录必须包含 assets/（embed.FS 或测试用的 fstest.MapFS）
func NewResourceManager(resources fs.FS) *ResourceManager {
	return &ResourceManager{resources: resources}
}

// LoadAll 加载生成器配置、关卡配置和预制体
//
// spawner.yaml 缺失时使用默认配置（自动扫描 prefabs 目录）；
// levels.yaml 缺失或无效时返回错误。
func (rm *ResourceManager) LoadAll() error {
	if err := rm.loadSpawnerConfig(); err != nil {
		return err
	}
	if err := rm.loadLevelsConfig(); err != nil {
		return err
	}

	assets, err := fs.Sub(rm.resources, assetsRoot)
	if err != nil {
		return fmt.Errorf("failed to open assets root: %w", err)
	}
	rm.prefabs = systems.BuildPrefabRegistry(rm.spawnerConfig, assets)
	if rm.prefabs.Len() == 0 {
		log.Printf("[ResourceManager] Warning: No animal prefabs registered")
	}
	log.Printf("[ResourceManager] Loaded %d levels, %d prefabs", len(rm.levelsConfig.Levels), rm.prefabs.Len())
	return nil
}

func (rm *ResourceManager) loadSpawnerConfig() error {
	data, err := fs.ReadFile(rm.resources, SpawnerConfigPath)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %s not found, using defaults: %v", SpawnerConfigPath, err)
		rm.spawnerConfig = config.DefaultSpawnerConfig()
		return nil
	}

	cfg, err := config.ParseSpawnerConfig(data)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", SpawnerConfigPath, err)
	}
	rm.spawnerConfig = cfg
	return nil
}

func (rm *ResourceManager) loadLevelsConfig() error {
	data, err := fs.ReadFile(rm.resources, LevelsConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", LevelsConfigPath, err)
	}

	cfg, err := config.ParseLevelsConfig(data, LevelsConfigPath)
	if err != nil {
		return err
	}
	rm.levelsConfig = cfg
	return nil
}

// GetSpawnerConfig 返回生成器配置（LoadAll 之前为 nil）
func (rm *ResourceManager) GetSpawnerConfig() *config.SpawnerConfig {
	return rm.spawnerConfig
}

// GetPrefabRegistry 返回预制体注册表（LoadAll 之前为 nil）
func (rm *ResourceManager) GetPrefabRegistry() *systems.PrefabRegistry {
	return rm.prefabs
}

// GetLevelConfig 返回指定关卡的配置
func (rm *ResourceManager) GetLevelConfig(level int) (*config.LevelConfig, error) {
	if rm.levelsConfig == nil {
		return nil, fmt.Errorf("levels config not loaded")
	}
	return rm.levelsConfig.GetLevel(level)
}

// LevelCount 返回配置的关卡数量
func (rm *ResourceManager) LevelCount() int {
	if rm.levelsConfig == nil {
		return 0
	}
	return len(rm.levelsConfig.Levels)
}

// ValidateLevels 检查关卡配置与预制体是否匹配，返回发现的问题（为空表示通过）
//
// 检查项：任务目标的种类有对应预制体、生成点数量不少于任务需求总数、至少有一个检查点。
func (rm *ResourceManager) ValidateLevels() []string {
	if rm.levelsConfig == nil || rm.prefabs == nil {
		return []string{"resources not loaded"}
	}

	var issues []string
	for _, level := range rm.levelsConfig.Levels {
		questAnimals := lo.Uniq(lo.Map(level.Quest.Objectives, func(objective config.QuestObjective, _ int) types.AnimalType {
			return objective.AnimalType
		}))
		for _, animalType := range questAnimals {
			if _, ok := rm.prefabs.Resolve(animalType); !ok {
				issues = append(issues, fmt.Sprintf("level %d: no prefab for quest animal %s", level.Level, animalType))
			}
		}
		if required := level.Quest.TotalRequired(); required > len(level.SpawnPoints) {
			issues = append(issues, fmt.Sprintf("level %d: quest needs %d animals but only %d spawn points",
				level.Level, required, len(level.SpawnPoints)))
		}
		if len(level.Quest.Objectives) > 0 && len(level.Checkpoints) == 0 {
			issues = append(issues, fmt.Sprintf("level %d: no checkpoint to deliver animals", level.Level))
		}
	}
	return issues
}
