package systems

import (
	"log"
)

// QuestProgress 任务完成情况
type QuestProgress interface {
	IsComplete() bool
}

// ProgressionRecorder 记录过关结果（解锁下一关）
type ProgressionRecorder interface {
	CompleteLevel(level, stars, reward int) error
}

// PlayerLife 玩家是否已死亡
type PlayerLife interface {
	IsDead() bool
}

// LevelResult 关卡结果
type LevelResult int

const (
	LevelPlaying LevelResult = iota
	LevelWon
	LevelLost
)

// LevelSystem 关卡流程：倒计时、胜负判定
type LevelSystem struct {
	quest       QuestProgress
	panel       *GamePlayPanelSystem
	progression ProgressionRecorder
	player      PlayerLife

	level     int
	timeLimit float64
	reward    int

	remaining float64
	result    LevelResult
	paused    bool
}

// NewLevelSystem 创建关卡系统
//
// 参数:
//   - quest: 任务进度
//   - panel: HUD 面板（可为 nil）
//   - progression: 过关记录（可为 nil）
//   - level: 关卡编号
//   - timeLimit: 限时（秒），不大于 0 表示不限时
//   - reward: 过关奖励
func NewLevelSystem(quest QuestProgress, panel *GamePlayPanelSystem, progression ProgressionRecorder, level int, timeLimit float64, reward int) *LevelSystem {
	return &LevelSystem{
		quest:       quest,
		panel:       panel,
		progression: progression,
		level:       level,
		timeLimit:   timeLimit,
		reward:      reward,
	}
}

// SetPlayerLife 设置玩家生命状态
// 玩家死亡后倒计时停止，由失败面板的延迟回调负责判负
func (s *LevelSystem) SetPlayerLife(player PlayerLife) {
	s.player = player
}

// Start 开始（或重新开始）关卡
func (s *LevelSystem) Start() {
	s.remaining = s.timeLimit
	s.result = LevelPlaying
	s.paused = false
	if s.panel != nil {
		s.panel.OnEnable()
		s.panel.SetCountDown(s.remaining, s.timeLimit)
	}
	log.Printf("[LevelSystem] Level %d started (time limit %.0fs)", s.level, s.timeLimit)
}

// Update 推进倒计时并判定胜负
func (s *LevelSystem) Update(deltaTime float64) {
	if s.result != LevelPlaying {
		return
	}

	if s.quest != nil && s.quest.IsComplete() {
		s.win()
		return
	}

	if s.timeLimit <= 0 {
		return
	}
	if s.player != nil && s.player.IsDead() {
		return
	}

	s.remaining -= deltaTime
	if s.remaining < 0 {
		s.remaining = 0
	}
	if s.panel != nil {
		s.panel.SetCountDown(s.remaining, s.timeLimit)
	}

	if s.remaining <= 0 {
		if s.panel != nil {
			s.panel.ShowLosePanel(true)
		}
		s.MarkLost()
	}
}

// win 过关：计算星级、显示胜利面板、记录进度
func (s *LevelSystem) win() {
	s.result = LevelWon
	s.paused = true

	stars := CalculateStars(s.remaining, s.timeLimit)
	if s.panel != nil {
		s.panel.ShowWinPanel(true, stars, s.reward)
	}
	if s.progression != nil {
		if err := s.progression.CompleteLevel(s.level, stars, s.reward); err != nil {
			log.Printf("[LevelSystem] Warning: Failed to record level completion: %v", err)
		}
	}
	log.Printf("[LevelSystem] Level %d won with %d stars", s.level, stars)
}

// MarkLost 判负并暂停（失败面板由调用方负责显示）
func (s *LevelSystem) MarkLost() {
	if s.result != LevelPlaying {
		return
	}
	s.result = LevelLost
	s.paused = true
	log.Printf("[LevelSystem] Level %d lost", s.level)
}

// Result 返回关卡结果
func (s *LevelSystem) Result() LevelResult {
	return s.result
}

// IsPaused 关卡结束后游戏暂停
func (s *LevelSystem) IsPaused() bool {
	return s.paused
}

// Remaining 返回剩余时间（秒）
func (s *LevelSystem) Remaining() float64 {
	return s.remaining
}

// Level 返回关卡编号
func (s *LevelSystem) Level() int {
	return s.level
}

// CalculateStars 根据剩余时间比例计算星级
//
//	> 2/3 → 3 星，> 1/3 → 2 星，其余 1 星；不限时关卡固定 3 星
func CalculateStars(remaining, timeLimit float64) int {
	if timeLimit <= 0 {
		return 3
	}
	ratio := remaining / timeLimit
	switch {
	case ratio > 2.0/3.0:
		return 3
	case ratio > 1.0/3.0:
		return 2
	default:
		return 1
	}
}
