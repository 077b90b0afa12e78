package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 通过音效ID播放，音效数据由 SynthesizeSound 生成或通过 RegisterSound 注册
//
// audioContext 为 nil 时进入静音模式（测试或没有音频设备时），PlaySound 总是返回 false。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置）
	pcm             map[string][]byte        // 音效ID -> PCM 数据
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	missing         map[string]bool          // 已警告过的未知音效
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（可为 nil，静音模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		pcm:             make(map[string][]byte),
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// RegisterSound 注册自定义音效（16 位小端双声道 PCM），覆盖同名音效
func (am *AudioManager) RegisterSound(soundID string, pcm []byte) {
	am.pcm[soundID] = pcm
	delete(am.soundPlayers, soundID)
	delete(am.missing, soundID)
}

// HasSound 音效是否可用（已注册或可合成）
func (am *AudioManager) HasSound(soundID string) bool {
	return am.soundData(soundID) != nil
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(clampVolume(volume))
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预先生成音效数据和播放器，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.soundData(soundID) == nil {
			continue
		}
		am.getSoundPlayer(soundID)
		loaded++
	}
	log.Printf("[AudioManager] Preloaded %d sounds", loaded)
}

// soundData 返回音效的 PCM 数据，内置音效首次使用时合成
func (am *AudioManager) soundData(soundID string) []byte {
	if data, ok := am.pcm[soundID]; ok {
		return data
	}
	data, ok := SynthesizeSound(soundID)
	if !ok {
		if !am.missing[soundID] {
			log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
			am.missing[soundID] = true
		}
		return nil
	}
	am.pcm[soundID] = data
	return data
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	data := am.soundData(soundID)
	if data == nil || am.audioContext == nil {
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(data)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
