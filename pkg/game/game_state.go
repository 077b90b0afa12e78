package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "farmrescue"

// GameState 跨关卡共享的游戏状态：存储、设置与进度、音频
type GameState struct {
	gdataManager    *gdata.Manager // 可为 nil（降级模式，仅内存）
	settingsManager *SettingsManager
	audioManager    *AudioManager
}

// NewGameState 打开持久化存储并创建设置与音频管理器
//
// 参数：
//   - appName: gdata 应用名，为空时使用 DefaultAppName
//   - audioContext: ebiten 音频上下文（可为 nil，静音模式）
//
// 存储打开失败时输出警告并进入降级模式，不返回错误。
func NewGameState(appName string, audioContext *audio.Context) *GameState {
	if appName == "" {
		appName = DefaultAppName
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[GameState] Warning: Failed to open storage: %v (progress will not be saved)", err)
		manager = nil
	}
	return NewGameStateWithManager(manager, audioContext)
}

// NewGameStateWithManager 使用已有的 gdata Manager 创建游戏状态（manager 为 nil 时为降级模式）
func NewGameStateWithManager(manager *gdata.Manager, audioContext *audio.Context) *GameState {
	settingsManager, err := NewSettingsManager(manager)
	if err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}

	return &GameState{
		gdataManager:    manager,
		settingsManager: settingsManager,
		audioManager:    NewAudioManager(audioContext, settingsManager),
	}
}

// GetGdataManager 返回存储管理器（降级模式下为 nil）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置与进度管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// GetAudioManager 返回音频管理器
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// GetCurrentLevel 返回当前关卡
func (gs *GameState) GetCurrentLevel() int {
	return gs.settingsManager.GetCurrentLevel()
}
