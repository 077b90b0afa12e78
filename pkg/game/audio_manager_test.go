package game

import (
	"testing"

	"github.com/decker502/farmrescue/pkg/config"
)

// TestAudioManagerSilentMode 没有音频上下文时不播放但能识别音效
func TestAudioManagerSilentMode(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if !am.HasSound(config.SoundAnimalCollect) {
		t.Error("built-in sound should be available")
	}
	if am.HasSound("unknown_sound") {
		t.Error("unknown sound should not be available")
	}
	if am.PlaySound(config.SoundAnimalCollect) {
		t.Error("PlaySound should fail without an audio context")
	}

	am.PreloadSounds(SynthesizedSoundIDs())
	if len(am.pcm) != len(SynthesizedSoundIDs()) {
		t.Errorf("cached %d sounds, want %d", len(am.pcm), len(SynthesizedSoundIDs()))
	}
}

// TestAudioManagerRegisterSound 自定义音效覆盖内置音效
func TestAudioManagerRegisterSound(t *testing.T) {
	am := NewAudioManager(nil, nil)
	custom := []byte{1, 0, 1, 0}

	am.RegisterSound(config.SoundWin, custom)
	if got := am.soundData(config.SoundWin); len(got) != 4 {
		t.Errorf("soundData(win) length = %d, want 4", len(got))
	}

	am.RegisterSound("bark", custom)
	if !am.HasSound("bark") {
		t.Error("registered sound should be available")
	}
}

// TestAudioManagerVolume 音量写回设置并限制范围
func TestAudioManagerVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	am.SetSoundVolume(0.3)
	if am.GetSoundVolume() != 0.3 {
		t.Errorf("GetSoundVolume() = %v, want 0.3", am.GetSoundVolume())
	}
	am.SetSoundVolume(4)
	if am.GetSoundVolume() != 1 {
		t.Errorf("GetSoundVolume() = %v, want clamped 1", am.GetSoundVolume())
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound(config.SoundWin) {
		t.Error("disabled sound should not play")
	}

	if NewAudioManager(nil, nil).GetSoundVolume() != 0.8 {
		t.Error("default volume should be 0.8")
	}
}
