package systems

import (
	"log"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// LosePanelDelay 死亡后延迟显示失败面板的时间（秒）
const LosePanelDelay = 1.0

// PlayerHealthSystem 玩家生命值
type PlayerHealthSystem struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID
	animation     *PlayerAnimationSystem
	panel         *GamePlayPanelSystem
	soundPlayer   SoundPlayer

	loseTimer  *components.TimerComponent // 死亡后创建，到期显示失败面板
	onGameOver func()                     // 失败面板显示后回调（暂停游戏）
}

// NewPlayerHealthSystem 创建玩家生命系统
func NewPlayerHealthSystem(
	em *ecs.EntityManager,
	player ecs.EntityID,
	animation *PlayerAnimationSystem,
	panel *GamePlayPanelSystem,
	soundPlayer SoundPlayer,
) *PlayerHealthSystem {
	return &PlayerHealthSystem{
		entityManager: em,
		player:        player,
		animation:     animation,
		panel:         panel,
		soundPlayer:   soundPlayer,
	}
}

// SetOnGameOver 设置失败面板显示后的回调
func (s *PlayerHealthSystem) SetOnGameOver(callback func()) {
	s.onGameOver = callback
}

func (s *PlayerHealthSystem) health() *components.HealthComponent {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.player)
	if !ok {
		return nil
	}
	return health
}

// Initialize 设置满血并刷新生命条
func (s *PlayerHealthSystem) Initialize(maxHealth int) {
	health := s.health()
	if health == nil {
		return
	}
	health.MaxHealth = maxHealth
	health.CurrentHealth = maxHealth
	health.IsDead = false
	s.loseTimer = nil
	if s.panel != nil {
		s.panel.SetHealthBar(health.CurrentHealth, health.MaxHealth)
	}
}

// TakeDamage 受到伤害，生命值降到 0 时死亡
func (s *PlayerHealthSystem) TakeDamage(damage int) {
	health := s.health()
	if health == nil || health.IsDead {
		return
	}

	health.CurrentHealth -= damage
	playSound(s.soundPlayer, config.SoundHurt)

	if health.CurrentHealth <= 0 {
		health.CurrentHealth = 0
		if s.panel != nil {
			s.panel.SetHealthBar(health.CurrentHealth, health.MaxHealth)
		}
		s.die(health)
		return
	}
	if s.panel != nil {
		s.panel.SetHealthBar(health.CurrentHealth, health.MaxHealth)
	}
}

// IsDead 玩家是否已死亡
func (s *PlayerHealthSystem) IsDead() bool {
	health := s.health()
	return health != nil && health.IsDead
}

// die 播放死亡动画、禁用玩家，并安排延迟显示失败面板
func (s *PlayerHealthSystem) die(health *components.HealthComponent) {
	if health.IsDead {
		return
	}
	health.IsDead = true

	if s.animation != nil {
		s.animation.SetDie()
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player); ok {
		player.Disabled = true
	}

	s.loseTimer = &components.TimerComponent{
		Name:       "show_lose_panel",
		TargetTime: LosePanelDelay,
	}
	log.Printf("[PlayerHealthSystem] Player died, lose panel in %.1fs", LosePanelDelay)
}

// Update 推进失败面板计时器
func (s *PlayerHealthSystem) Update(deltaTime float64) {
	if s.loseTimer == nil || s.loseTimer.IsReady {
		return
	}

	s.loseTimer.CurrentTime += deltaTime
	if s.loseTimer.CurrentTime < s.loseTimer.TargetTime {
		return
	}
	s.loseTimer.IsReady = true

	if s.panel != nil {
		s.panel.ShowLosePanel(true)
	}
	if s.onGameOver != nil {
		s.onGameOver()
	}
}
