package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/samber/lo"
)

var (
	hudColor     = color.RGBA{R: 40, G: 40, B: 40, A: 230}
	timerColor   = color.RGBA{R: 90, G: 170, B: 250, A: 255}
	healthColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	barBackColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	panelColor   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// HUD 条形位置（像素）
const (
	hudBarX      = 560
	hudBarWidth  = 160
	hudBarHeight = 10
)

// QuestProgressSource 当前任务及每种动物的送达进度
type QuestProgressSource interface {
	QuestSource
	Progress(animalType types.AnimalType) (collected, required int)
}

// GamePlayPanelRenderSystem 绘制顶部状态栏和胜负面板
type GamePlayPanelRenderSystem struct {
	panel *GamePlayPanelSystem
	quest QuestProgressSource
	title string

	screenWidth  float32
	screenHeight float32
	hudHeight    float32
}

// NewGamePlayPanelRenderSystem 创建面板渲染系统
// quest 可以为 nil，此时状态栏显示 "No quest"
func NewGamePlayPanelRenderSystem(panel *GamePlayPanelSystem, quest QuestProgressSource, screenWidth, screenHeight, hudHeight float64) *GamePlayPanelRenderSystem {
	return &GamePlayPanelRenderSystem{
		panel:        panel,
		quest:        quest,
		screenWidth:  float32(screenWidth),
		screenHeight: float32(screenHeight),
		hudHeight:    float32(hudHeight),
	}
}

// SetTitle 设置状态栏第一行的标题
func (s *GamePlayPanelRenderSystem) SetTitle(title string) {
	s.title = title
}

// Draw 绘制状态栏，关卡结束时叠加结果面板
func (s *GamePlayPanelRenderSystem) Draw(screen *ebiten.Image) {
	s.drawHUD(screen)
	s.drawResultPanels(screen)
}

// QuestSummary 任务进度文本，例如 "Cow 1/2  Chicken 0/1"
// 同一种动物出现在多个目标中时只列一次
func (s *GamePlayPanelRenderSystem) QuestSummary() string {
	if s.quest == nil {
		return "No quest"
	}
	quest := s.quest.CurrentQuest()
	if quest == nil || len(quest.Objectives) == 0 {
		return "No quest"
	}

	animalTypes := lo.Uniq(lo.Map(quest.Objectives, func(objective config.QuestObjective, _ int) types.AnimalType {
		return objective.AnimalType
	}))
	parts := lo.Map(animalTypes, func(animalType types.AnimalType, _ int) string {
		collected, required := s.quest.Progress(animalType)
		return fmt.Sprintf("%s %d/%d", animalType, collected, required)
	})
	return strings.Join(parts, "  ")
}

// HealthFill 生命条填充比例 [0, 1]
func HealthFill(current, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 0
	}
	return clamp01(float64(current) / float64(maxHealth))
}

func (s *GamePlayPanelRenderSystem) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, s.screenWidth, s.hudHeight, hudColor, false)
	ebitenutil.DebugPrintAt(screen, s.title, 8, 4)
	ebitenutil.DebugPrintAt(screen, s.QuestSummary(), 8, 22)

	panel := s.panel.Panel()
	if panel == nil {
		return
	}

	vector.DrawFilledRect(screen, hudBarX, 6, hudBarWidth, hudBarHeight, barBackColor, false)
	vector.DrawFilledRect(screen, hudBarX, 6, float32(hudBarWidth*panel.CountDownFill), hudBarHeight, timerColor, false)
	if panel.CountDownTextVisible {
		ebitenutil.DebugPrintAt(screen, panel.CountDownText+"s", hudBarX+hudBarWidth+8, 2)
	}

	fill := HealthFill(panel.HealthCurrent, panel.HealthMax)
	vector.DrawFilledRect(screen, hudBarX, 24, hudBarWidth, hudBarHeight, barBackColor, false)
	vector.DrawFilledRect(screen, hudBarX, 24, float32(hudBarWidth*fill), hudBarHeight, healthColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", panel.HealthCurrent), hudBarX+hudBarWidth+8, 20)
}

func (s *GamePlayPanelRenderSystem) drawResultPanels(screen *ebiten.Image) {
	panel := s.panel.Panel()
	if panel == nil || (!panel.WinPanelVisible && !panel.LosePanelVisible) {
		return
	}

	const w, h = 320, 120
	x := (s.screenWidth - w) / 2
	y := (s.screenHeight - h) / 2
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, false)

	if panel.WinPanelVisible {
		ebitenutil.DebugPrintAt(screen, "FARM RESCUED!", int(x)+110, int(y)+16)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Stars: %s   Reward: %d", StarText(panel.Stars), panel.Reward), int(x)+70, int(y)+44)
		ebitenutil.DebugPrintAt(screen, "N: next level   R: replay", int(x)+76, int(y)+80)
		return
	}
	ebitenutil.DebugPrintAt(screen, "THE ANIMALS GOT AWAY", int(x)+90, int(y)+30)
	ebitenutil.DebugPrintAt(screen, "R: try again", int(x)+120, int(y)+70)
}

// StarText 星级文本，例如 2 星为 "**-"
func StarText(stars int) string {
	stars = max(0, min(stars, 3))
	return strings.Repeat("*", stars) + strings.Repeat("-", 3-stars)
}
