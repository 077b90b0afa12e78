package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 音频采样率，与 ebiten audio.Context 保持一致
const SampleRate = 48000

// maxSoundDuration 单个音效的最大长度
const maxSoundDuration = 2 * time.Second

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSource 白噪声，随机源固定种子以保证每次生成相同的音效
func noiseSource(seed int64) beep.Streamer {
	rng := rand.New(rand.NewSource(seed))
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// waveSource 返回无限长的波形流
// 频率超出采样率一半时生成器会报错，这时退化为静音
func waveSource(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	var (
		source beep.Streamer
		err    error
	)
	switch wave {
	case WaveSquare:
		source, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		source, err = generators.SawtoothTone(rate, freq)
	case WaveNoise:
		return noiseSource(int64(freq) + 1)
	default:
		source, err = generators.SineTone(rate, freq)
	}
	if err != nil {
		log.Printf("[SoundSynth] Warning: %.2f Hz wave at %d Hz: %v", freq, rate, err)
		return generators.Silence(-1)
	}
	return source
}

// shape 截取 duration 长度并套上线性起音/释音
//
//	0 ──attack──> 1 ──sustain── 1 ──release──> 0
func shape(source beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	attackN := min(rate.N(attack), total)
	releaseN := min(rate.N(release), total-attackN)
	sustainN := total - attackN - releaseN

	return beep.Seq(
		effects.Transition(beep.Take(attackN, source), attackN, 0, 1, effects.TransitionLinear),
		beep.Take(sustainN, source),
		effects.Transition(beep.Take(releaseN, source), releaseN, 1, 0, effects.TransitionLinear),
	)
}

// newVolume 线性音量转换为 effects.Volume（以 2 为底）
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone 带包络的单音
func tone(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return shape(waveSource(freq, wave, rate), duration, 5*time.Millisecond, duration/2, rate)
}

// createCollectSound 捡起动物：明亮的铃声
func createCollectSound(rate beep.SampleRate) beep.Streamer {
	const d = 180 * time.Millisecond
	return beep.Mix(
		newVolume(tone(659.25, d, WaveSine, rate), 0.6),
		newVolume(tone(1318.51, d, WaveSine, rate), 0.25),
	)
}

// createDropSound 放下动物：上行两音
func createDropSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, 90*time.Millisecond, WaveSquare, rate),
		tone(783.99, 140*time.Millisecond, WaveSquare, rate),
	), 0.3)
}

// createWinSound 过关：C 大调琶音
func createWinSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	streamers := make([]beep.Streamer, 0, len(notes))
	for i, freq := range notes {
		d := 120 * time.Millisecond
		if i == len(notes)-1 {
			d = 400 * time.Millisecond
		}
		streamers = append(streamers, tone(freq, d, WaveSine, rate))
	}
	return newVolume(beep.Seq(streamers...), 0.6)
}

// createLoseSound 失败：下行锯齿波
func createLoseSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(392.00, 200*time.Millisecond, WaveSaw, rate),
		tone(329.63, 200*time.Millisecond, WaveSaw, rate),
		tone(261.63, 450*time.Millisecond, WaveSaw, rate),
	), 0.35)
}

// createHurtSound 受伤：短促噪声
func createHurtSound(rate beep.SampleRate) beep.Streamer {
	const d = 120 * time.Millisecond
	return newVolume(shape(waveSource(0, WaveNoise, rate), d, 2*time.Millisecond, 80*time.Millisecond, rate), 0.4)
}

// synthesizers 内置音效生成器
var synthesizers = map[string]func(beep.SampleRate) beep.Streamer{
	config.SoundAnimalCollect: createCollectSound,
	config.SoundAnimalDrop:    createDropSound,
	config.SoundWin:           createWinSound,
	config.SoundLose:          createLoseSound,
	config.SoundHurt:          createHurtSound,
}

// SynthesizedSoundIDs 返回所有内置音效ID
func SynthesizedSoundIDs() []string {
	return []string{config.SoundAnimalCollect, config.SoundAnimalDrop, config.SoundWin, config.SoundLose, config.SoundHurt}
}

// SynthesizeSound 生成指定音效的 PCM 数据（16 位小端、双声道）
//
// 返回: PCM 数据, 是否存在该音效
func SynthesizeSound(soundID string) ([]byte, bool) {
	streamer, _, ok := SoundStreamer(soundID)
	if !ok {
		return nil, false
	}
	return RenderPCM(streamer), true
}

// SoundStreamer 返回指定音效的有限长度流及其格式（用于导出 WAV）
func SoundStreamer(soundID string) (beep.Streamer, beep.Format, bool) {
	format := beep.Format{SampleRate: beep.SampleRate(SampleRate), NumChannels: 2, Precision: 2}
	create, ok := synthesizers[soundID]
	if !ok {
		return nil, format, false
	}
	return beep.Take(format.SampleRate.N(maxSoundDuration), create(format.SampleRate)), format, true
}

// RenderPCM 把流完整渲染为 16 位小端双声道 PCM
// 流必须是有限长度的
func RenderPCM(s beep.Streamer) []byte {
	var pcm []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, 4)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(frame[0:2], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:4], uint16(toInt16(buf[i][1])))
			pcm = append(pcm, frame...)
		}
		if !ok || n == 0 {
			return pcm
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}
