// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/farmrescue/pkg/embedded"
	"github.com/decker502/farmrescue/pkg/game"
	"github.com/decker502/farmrescue/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡，0 表示从存档加载（默认第 1 关）
	Level int
	// ResetProgress 启动前清空进度
	ResetProgress bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resources, err := embedded.Root()
	if err != nil {
		return nil, fmt.Errorf("资源初始化失败: %w", err)
	}
	resourceManager := game.NewResourceManager(resources)
	if err := resourceManager.LoadAll(); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	audioContext := audio.NewContext(game.SampleRate)
	gameState := game.NewGameState(game.DefaultAppName, audioContext)
	gameState.GetAudioManager().PreloadSounds(game.SynthesizedSoundIDs())
	log.Printf("[App] AudioManager initialized")

	settingsManager := gameState.GetSettingsManager()
	if cfg.ResetProgress {
		if err := settingsManager.ResetProgress(); err != nil {
			log.Printf("[App] Warning: Failed to reset progress: %v", err)
		}
	}
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(level int) (game.Scene, error) {
		return scenes.NewGameScene(resourceManager, gameState, sceneManager, level)
	})

	// 确定加载哪个关卡
	levelToLoad := settingsManager.GetCurrentLevel()
	if cfg.Level > 0 {
		levelToLoad = cfg.Level
		settingsManager.SetCurrentLevel(levelToLoad)
		log.Printf("[App] Level override: %d", levelToLoad)
	}

	log.Printf("[App] Starting level: %d", levelToLoad)
	if !sceneManager.LoadLevel(levelToLoad) {
		return nil, fmt.Errorf("关卡 %d 加载失败", levelToLoad)
	}

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", scenes.ScreenWidth, scenes.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 切换音效
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		settings := a.gameState.GetSettingsManager()
		settings.SetSoundEnabled(!settings.GetSettings().SoundEnabled)
	}

	a.sceneManager.Update(scenes.FixedDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	settings := a.gameState.GetSettingsManager()
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	settings.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
