package config

import (
	"fmt"
	"os"

	"github.com/decker502/farmrescue/pkg/types"
	"gopkg.in/yaml.v3"
)

// AnimalPrefabData 手动配置的种类 -> 预制体映射
type AnimalPrefabData struct {
	AnimalType types.AnimalType `yaml:"animalType"`
	Prefab     string           `yaml:"prefab"` // 预制体名称（对应 prefabs 目录下的文件名，不含扩展名）
}

// SpawnerConfig 动物生成器配置
type SpawnerConfig struct {
	// AutoLoadFromResources 为 true 时扫描 PrefabsFolderPath 自动建立映射，忽略 AnimalPrefabs
	AutoLoadFromResources bool               `yaml:"autoLoadFromResources"`
	PrefabsFolderPath     string             `yaml:"prefabsFolderPath"`
	AnimalPrefabs         []AnimalPrefabData `yaml:"animalPrefabs"`

	// SpawnYaw 生成时的朝向（度），默认 180，让动物面向场景内侧
	SpawnYaw *float64 `yaml:"spawnYaw"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// 生成器默认值
const (
	DefaultPrefabsFolderPath = "prefabs"
	DefaultSpawnYaw          = 180.0
)

// DefaultSpawnerConfig 返回默认配置（自动扫描 prefabs 目录）
func DefaultSpawnerConfig() *SpawnerConfig {
	yaw := DefaultSpawnYaw
	return &SpawnerConfig{
		AutoLoadFromResources: true,
		PrefabsFolderPath:     DefaultPrefabsFolderPath,
		SpawnYaw:              &yaw,
	}
}

// Yaw 返回生成朝向
func (sc *SpawnerConfig) Yaw() float64 {
	if sc.SpawnYaw == nil {
		return DefaultSpawnYaw
	}
	return *sc.SpawnYaw
}

// LoadSpawnerConfig 从 YAML 文件加载生成器配置
func LoadSpawnerConfig(filePath string) (*SpawnerConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawner config file: %w", err)
	}
	return ParseSpawnerConfig(data)
}

// ParseSpawnerConfig 解析生成器配置数据
func ParseSpawnerConfig(data []byte) (*SpawnerConfig, error) {
	cfg := DefaultSpawnerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse spawner config YAML: %w", err)
	}

	if err := validateSpawnerConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid spawner config: %w", err)
	}
	return cfg, nil
}

// validateSpawnerConfig 验证配置的有效性
//
// 自动扫描模式下目录为空不是错误：注册表保持为空，生成时逐个目标报警告。
func validateSpawnerConfig(cfg *SpawnerConfig) error {
	if cfg.AutoLoadFromResources {
		return nil
	}
	for i, data := range cfg.AnimalPrefabs {
		if data.Prefab == "" {
			return fmt.Errorf("animalPrefabs[%d]: prefab name cannot be empty", i)
		}
	}
	return nil
}
