package config

import (
	"fmt"

	"github.com/decker502/farmrescue/pkg/types"
	"gopkg.in/yaml.v3"
)

// PrefabTemplate 动物预制体模板
//
// AnimalType 是模板自带的种类标记，为空时由注册表根据 Name 推断。
type PrefabTemplate struct {
	Name       string            `yaml:"name"`
	AnimalType *types.AnimalType `yaml:"animalType,omitempty"`

	Radius       float64  `yaml:"radius"`       // 碰撞半径，默认 0.5
	WanderSpeed  *float64 `yaml:"wanderSpeed"`  // 闲逛速度，默认 0.8；0 表示原地不动
	WanderRadius float64  `yaml:"wanderRadius"` // 闲逛半径，默认 1.5
	Color        string   `yaml:"color"`        // 调试渲染颜色（#RRGGBB）

	CollectSound  string `yaml:"collectSound"`  // 捡起音效，默认 "animal_collect"
	CollectEffect string `yaml:"collectEffect"` // 捡起特效，默认 "collect_sparkle"
}

// 预制体默认值
const (
	DefaultPrefabRadius  = 0.5
	DefaultWanderSpeed   = 0.8
	DefaultWanderRadius  = 1.5
	DefaultCollectSound  = SoundAnimalCollect
	DefaultCollectEffect = "collect_sparkle"
)

// ParsePrefabTemplate 解析预制体模板
// defaultName 在模板未声明 name 时使用（通常是文件名）
func ParsePrefabTemplate(data []byte, defaultName string) (*PrefabTemplate, error) {
	var template PrefabTemplate
	if err := yaml.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to parse prefab %s: %w", defaultName, err)
	}
	if template.Name == "" {
		template.Name = defaultName
	}
	applyPrefabDefaults(&template)
	return &template, nil
}

// Speed 返回闲逛速度
func (t *PrefabTemplate) Speed() float64 {
	if t.WanderSpeed == nil {
		return DefaultWanderSpeed
	}
	return *t.WanderSpeed
}

// applyPrefabDefaults 为缺失的可选字段设置默认值
func applyPrefabDefaults(template *PrefabTemplate) {
	if template.Radius <= 0 {
		template.Radius = DefaultPrefabRadius
	}
	if template.WanderSpeed == nil {
		speed := DefaultWanderSpeed
		template.WanderSpeed = &speed
	}
	if template.WanderRadius == 0 {
		template.WanderRadius = DefaultWanderRadius
	}
	if template.CollectSound == "" {
		template.CollectSound = DefaultCollectSound
	}
	if template.CollectEffect == "" {
		template.CollectEffect = DefaultCollectEffect
	}
}
