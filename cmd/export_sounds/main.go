// export_sounds 把内置的合成音效导出为 WAV 文件，方便试听和调整参数
//
// 用法：
//
//	go run ./cmd/export_sounds [输出目录]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/wav"

	"github.com/decker502/farmrescue/pkg/game"
)

func main() {
	outDir := "build/sounds"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Printf("❌ 创建目录失败: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, soundID := range game.SynthesizedSoundIDs() {
		path := filepath.Join(outDir, soundID+".wav")
		if err := export(soundID, path); err != nil {
			fmt.Printf("❌ %s: %v\n", soundID, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func export(soundID, path string) error {
	streamer, format, ok := game.SoundStreamer(soundID)
	if !ok {
		return fmt.Errorf("unknown sound")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return wav.Encode(f, streamer, format)
}
