package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3Config 配置文件中的三维坐标
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// CheckpointConfig 检查点配置
type CheckpointConfig struct {
	Position   Vec3Config  `yaml:"position"`
	DropPoint  *Vec3Config `yaml:"dropPoint"`  // 相对检查点的放置点，为空则使用检查点原点
	DropYaw    float64     `yaml:"dropYaw"`    // 放置后的朝向（度）
	Radius     float64     `yaml:"radius"`     // 触发半径，默认 1.5
	DropSound  string      `yaml:"dropSound"`  // 默认 "animal_drop"
	DropEffect string      `yaml:"dropEffect"` // 默认 "drop_sparkle"
}

// HazardConfig 危险区域：玩家停留在范围内时按间隔扣血
type HazardConfig struct {
	Position Vec3Config `yaml:"position"`
	Radius   float64    `yaml:"radius"`   // 默认 1.0
	Damage   int        `yaml:"damage"`   // 每次伤害，默认 10
	Interval float64    `yaml:"interval"` // 伤害间隔（秒），默认 1.0
}

// LevelConfig 单个关卡的配置
type LevelConfig struct {
	Level        int                `yaml:"level"`        // 关卡编号，从 1 开始
	Name         string             `yaml:"name"`         // 关卡名称
	Quest        QuestData          `yaml:"quest"`        // 本关任务
	TimeLimit    float64            `yaml:"timeLimit"`    // 限时（秒），默认 120
	Reward       int                `yaml:"reward"`       // 过关奖励金币
	PlayerHealth int                `yaml:"playerHealth"` // 玩家生命值，默认 100
	PlayerStart  Vec3Config         `yaml:"playerStart"`  // 玩家出生点
	SpawnPoints  []Vec3Config       `yaml:"spawnPoints"`  // 动物生成点（顺序即编号）
	Checkpoints  []CheckpointConfig `yaml:"checkpoints"`  // 检查点
	Hazards      []HazardConfig     `yaml:"hazards"`      // 危险区域（蜂巢等）
}

// LevelsConfig 全部关卡配置
type LevelsConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// 关卡默认值
const (
	DefaultTimeLimit        = 120.0
	DefaultPlayerHealth     = 100
	DefaultCheckpointRadius = 1.5
	DefaultDropSound        = SoundAnimalDrop
	DefaultDropEffect       = "drop_sparkle"
	DefaultHazardRadius     = 1.0
	DefaultHazardDamage     = 10
	DefaultHazardInterval   = 1.0
)

// LoadLevelsConfig 从YAML文件加载关卡配置
func LoadLevelsConfig(filePath string) (*LevelsConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels config file %s: %w", filePath, err)
	}
	return ParseLevelsConfig(data, filePath)
}

// ParseLevelsConfig 解析关卡配置数据
// source 仅用于错误信息（嵌入资源时传入资源路径）
func ParseLevelsConfig(data []byte, source string) (*LevelsConfig, error) {
	var levelsConfig LevelsConfig
	if err := yaml.Unmarshal(data, &levelsConfig); err != nil {
		return nil, fmt.Errorf("failed to parse levels config YAML from %s: %w", source, err)
	}

	for i := range levelsConfig.Levels {
		applyLevelDefaults(&levelsConfig.Levels[i])
	}

	if err := validateLevelsConfig(&levelsConfig); err != nil {
		return nil, fmt.Errorf("invalid levels config in %s: %w", source, err)
	}

	return &levelsConfig, nil
}

// GetLevel 返回指定关卡的配置
// 超过已配置的最大关卡时返回最后一关（后续关卡复用最后一关的布局）
func (lc *LevelsConfig) GetLevel(level int) (*LevelConfig, error) {
	if len(lc.Levels) == 0 {
		return nil, fmt.Errorf("no levels configured")
	}
	if level < 1 {
		return nil, fmt.Errorf("invalid level %d", level)
	}

	var last *LevelConfig
	for i := range lc.Levels {
		cfg := &lc.Levels[i]
		if cfg.Level == level {
			return cfg, nil
		}
		if last == nil || cfg.Level > last.Level {
			last = cfg
		}
	}
	if level > last.Level {
		return last, nil
	}
	return nil, fmt.Errorf("level %d not found", level)
}

// applyLevelDefaults 为缺失的可选字段设置默认值
func applyLevelDefaults(config *LevelConfig) {
	if config.TimeLimit == 0 {
		config.TimeLimit = DefaultTimeLimit
	}
	if config.PlayerHealth == 0 {
		config.PlayerHealth = DefaultPlayerHealth
	}
	for i := range config.Checkpoints {
		cp := &config.Checkpoints[i]
		if cp.Radius == 0 {
			cp.Radius = DefaultCheckpointRadius
		}
		if cp.DropSound == "" {
			cp.DropSound = DefaultDropSound
		}
		if cp.DropEffect == "" {
			cp.DropEffect = DefaultDropEffect
		}
	}
	for i := range config.Hazards {
		hazard := &config.Hazards[i]
		if hazard.Radius == 0 {
			hazard.Radius = DefaultHazardRadius
		}
		if hazard.Damage == 0 {
			hazard.Damage = DefaultHazardDamage
		}
		if hazard.Interval == 0 {
			hazard.Interval = DefaultHazardInterval
		}
	}
}

// validateLevelsConfig 验证关卡配置的合法性
//
// 任务目标为空不算错误：生成器会记录警告并跳过生成。
func validateLevelsConfig(config *LevelsConfig) error {
	if len(config.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	seen := make(map[int]bool)
	for i, level := range config.Levels {
		if level.Level < 1 {
			return fmt.Errorf("level[%d]: level number must be >= 1, got %d", i, level.Level)
		}
		if seen[level.Level] {
			return fmt.Errorf("level[%d]: duplicate level number %d", i, level.Level)
		}
		seen[level.Level] = true

		if level.TimeLimit < 0 {
			return fmt.Errorf("level %d: timeLimit must be >= 0, got %.2f", level.Level, level.TimeLimit)
		}
		if level.Reward < 0 {
			return fmt.Errorf("level %d: reward must be >= 0, got %d", level.Level, level.Reward)
		}
		for j, hazard := range level.Hazards {
			if hazard.Radius < 0 || hazard.Damage < 0 || hazard.Interval < 0 {
				return fmt.Errorf("level %d hazard[%d]: radius, damage and interval must be >= 0", level.Level, j)
			}
		}
		for j, objective := range level.Quest.Objectives {
			if objective.RequiredAmount < 0 {
				return fmt.Errorf("level %d objective[%d]: requiredAmount must be >= 0, got %d",
					level.Level, j, objective.RequiredAmount)
			}
		}
	}
	return nil
}
