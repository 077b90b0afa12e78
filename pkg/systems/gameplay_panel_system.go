package systems

import (
	"math"
	"strconv"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/samber/lo"
)

// GamePlayPanelSystem 游戏内 HUD 面板（倒计时、生命条、胜负面板）
type GamePlayPanelSystem struct {
	entityManager *ecs.EntityManager
	panel         ecs.EntityID
	soundPlayer   SoundPlayer
}

// NewGamePlayPanelSystem 创建面板系统
func NewGamePlayPanelSystem(em *ecs.EntityManager, panel ecs.EntityID, soundPlayer SoundPlayer) *GamePlayPanelSystem {
	return &GamePlayPanelSystem{
		entityManager: em,
		panel:         panel,
		soundPlayer:   soundPlayer,
	}
}

func (s *GamePlayPanelSystem) component() *components.GamePlayPanelComponent {
	panel, ok := ecs.GetComponent[*components.GamePlayPanelComponent](s.entityManager, s.panel)
	if !ok {
		return nil
	}
	return panel
}

// OnEnable 面板显示时重置：隐藏倒计时文本、清空进度条、隐藏胜负面板
func (s *GamePlayPanelSystem) OnEnable() {
	panel := s.component()
	if panel == nil {
		return
	}
	panel.CountDownTextVisible = false
	panel.CountDownText = ""
	panel.CountDownFill = 0
	panel.WinPanelVisible = false
	panel.LosePanelVisible = false
}

// SetCountDown 更新倒计时
//
// 文本显示剩余秒数向上取整，为 0 时隐藏；进度条为 remaining/max 限制到 [0, 1]，
// max 不大于 0 时进度条为 0。
func (s *GamePlayPanelSystem) SetCountDown(remainingTime, maxTime float64) {
	panel := s.component()
	if panel == nil {
		return
	}

	displayTime := int(math.Ceil(math.Max(0, remainingTime)))
	panel.CountDownTextVisible = displayTime > 0
	if panel.CountDownTextVisible {
		panel.CountDownText = strconv.Itoa(displayTime)
	}

	if maxTime > 0 {
		panel.CountDownFill = clamp01(remainingTime / maxTime)
	} else {
		panel.CountDownFill = 0
	}
}

// SetHealthBar 更新生命条
func (s *GamePlayPanelSystem) SetHealthBar(current, max int) {
	if panel := s.component(); panel != nil {
		panel.HealthCurrent = current
		panel.HealthMax = max
	}
}

// ShowWinPanel 显示胜利面板并播放胜利音效
func (s *GamePlayPanelSystem) ShowWinPanel(isShow bool, star, reward int) {
	playSound(s.soundPlayer, config.SoundWin)
	if panel := s.component(); panel != nil {
		panel.WinPanelVisible = isShow
		panel.Stars = star
		panel.Reward = reward
	}
}

// ShowLosePanel 显示失败面板并播放失败音效
func (s *GamePlayPanelSystem) ShowLosePanel(isShow bool) {
	playSound(s.soundPlayer, config.SoundLose)
	if panel := s.component(); panel != nil {
		panel.LosePanelVisible = isShow
	}
}

// Panel 返回面板组件（只读用途）
func (s *GamePlayPanelSystem) Panel() *components.GamePlayPanelComponent {
	return s.component()
}

func clamp01(v float64) float64 {
	return lo.Clamp(v, 0, 1)
}
