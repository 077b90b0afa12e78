package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   false,
	}
}

// PlayerProgress 玩家进度
//
// CurrentLevel 是已解锁的最高关卡，决定随机补位允许出现的动物种类。
type PlayerProgress struct {
	CurrentLevel int         `yaml:"currentLevel"`
	BestStars    map[int]int `yaml:"bestStars"` // 关卡 -> 最高星级
	Coins        int         `yaml:"coins"`     // 累计奖励
}

// DefaultProgress 返回新玩家的进度（第 1 关）
func DefaultProgress() *PlayerProgress {
	return &PlayerProgress{
		CurrentLevel: 1,
		BestStars:    make(map[int]int),
	}
}

// SettingsManager 设置与进度管理器
// 负责游戏设置和玩家进度的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
	progress     *PlayerProgress
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
	progressProperty = "progress"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方检查，加载失败不会返回错误
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		progress:     DefaultProgress(),
	}

	// 加载失败不是致命错误，使用默认值
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	if err := sm.LoadProgress(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load progress: %v (starting at level 1)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	return sm.loadProp(settingsProperty, sm.settings, func() { sm.settings = DefaultSettings() })
}

// LoadProgress 从 gdata 加载玩家进度
func (sm *SettingsManager) LoadProgress() error {
	sm.progress = DefaultProgress()
	err := sm.loadProp(progressProperty, sm.progress, func() { sm.progress = DefaultProgress() })
	sm.normalizeProgress()
	return err
}

// loadProp 读取并反序列化一个属性，失败时调用 reset 恢复默认值
func (sm *SettingsManager) loadProp(property string, target interface{}, reset func()) error {
	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, property) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, property)
	if err != nil {
		reset()
		return fmt.Errorf("failed to load %s: %w", property, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		reset()
		return fmt.Errorf("failed to unmarshal %s: %w", property, err)
	}

	log.Printf("[SettingsManager] %s loaded successfully", property)
	return nil
}

// normalizeProgress 修正存档中的非法值
func (sm *SettingsManager) normalizeProgress() {
	if sm.progress.CurrentLevel < 1 {
		sm.progress.CurrentLevel = 1
	}
	if sm.progress.BestStars == nil {
		sm.progress.BestStars = make(map[int]int)
	}
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	return sm.saveProp(settingsProperty, sm.settings)
}

// SaveProgress 保存玩家进度到 gdata
func (sm *SettingsManager) SaveProgress() error {
	return sm.saveProp(progressProperty, sm.progress)
}

func (sm *SettingsManager) saveProp(property string, value interface{}) error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", property, err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, property, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", property, err)
	}

	log.Printf("[SettingsManager] %s saved successfully", property)
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// GetCurrentLevel 返回当前关卡（至少为 1）
func (sm *SettingsManager) GetCurrentLevel() int {
	return sm.progress.CurrentLevel
}

// SetCurrentLevel 设置当前关卡，小于 1 的值按 1 处理
// 注意：仅修改内存中的进度，需调用 SaveProgress() 持久化
func (sm *SettingsManager) SetCurrentLevel(level int) {
	if level < 1 {
		level = 1
	}
	sm.progress.CurrentLevel = level
}

// CompleteLevel 记录过关结果并保存
//
// 更新最高星级、累加奖励，并解锁下一关（不会回退已解锁的关卡）。
func (sm *SettingsManager) CompleteLevel(level, stars, reward int) error {
	if stars > sm.progress.BestStars[level] {
		sm.progress.BestStars[level] = stars
	}
	sm.progress.Coins += reward
	if level+1 > sm.progress.CurrentLevel {
		sm.progress.CurrentLevel = level + 1
	}

	log.Printf("[SettingsManager] Level %d completed: %d stars, +%d coins, next level %d",
		level, stars, reward, sm.progress.CurrentLevel)
	return sm.SaveProgress()
}

// BestStars 返回关卡的最高星级（未通过为 0）
func (sm *SettingsManager) BestStars(level int) int {
	return sm.progress.BestStars[level]
}

// Coins 返回累计奖励
func (sm *SettingsManager) Coins() int {
	return sm.progress.Coins
}

// ResetProgress 清空进度（回到第 1 关）
func (sm *SettingsManager) ResetProgress() error {
	sm.progress = DefaultProgress()
	return sm.SaveProgress()
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
