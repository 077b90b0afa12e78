package systems

import (
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/types"
)

// 系统依赖的外部协作者
// 具体实现位于 game 包（QuestManager、SettingsManager、AudioManager），
// 通过构造函数注入，测试中可替换为桩实现。

// QuestSource 提供当前任务（只读）
type QuestSource interface {
	CurrentQuest() *config.QuestData
}

// LevelProvider 提供玩家当前的关卡进度
type LevelProvider interface {
	GetCurrentLevel() int
}

// ProgressReporter 接收动物送达通知
type ProgressReporter interface {
	OnAnimalCollected(animalType types.AnimalType)
}

// SoundPlayer 按ID播放音效，失败时静默忽略
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// EffectSpawner 在指定位置生成一次性特效
type EffectSpawner interface {
	SpawnEffect(name string, x, y, z float64)
}

// playSound 播放音效，播放器为空或音效ID为空时跳过
func playSound(player SoundPlayer, soundID string) {
	if player == nil || soundID == "" {
		return
	}
	player.PlaySound(soundID)
}

// spawnEffect 生成特效，生成器为空或特效名为空时跳过
func spawnEffect(spawner EffectSpawner, name string, x, y, z float64) {
	if spawner == nil || name == "" {
		return
	}
	spawner.SpawnEffect(name, x, y, z)
}
