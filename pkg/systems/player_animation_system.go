package systems

import (
	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// AnimationParams 玩家动画参数名称，名称为空时对应的调用被跳过
type AnimationParams struct {
	Speed string
	Shoot string
	Aim   string
	Die   string
}

// DefaultAnimationParams 默认参数名称
func DefaultAnimationParams() AnimationParams {
	return AnimationParams{
		Speed: "Speed",
		Shoot: "Shoot",
		Aim:   "Aiming",
		Die:   "Die",
	}
}

// PlayerAnimationSystem 把玩家的动作转发到动画参数
type PlayerAnimationSystem struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID
	params        AnimationParams
}

// NewPlayerAnimationSystem 创建玩家动画系统
func NewPlayerAnimationSystem(em *ecs.EntityManager, player ecs.EntityID, params AnimationParams) *PlayerAnimationSystem {
	return &PlayerAnimationSystem{
		entityManager: em,
		player:        player,
		params:        params,
	}
}

func (s *PlayerAnimationSystem) animator() *components.AnimatorComponent {
	animator, ok := ecs.GetComponent[*components.AnimatorComponent](s.entityManager, s.player)
	if !ok {
		return nil
	}
	return animator
}

// SetMovement 更新移动速度参数（0-1）
func (s *PlayerAnimationSystem) SetMovement(isMoving bool, speed float64) {
	animator := s.animator()
	if animator == nil || s.params.Speed == "" {
		return
	}
	if !isMoving {
		speed = 0
	}
	animator.SetFloat(s.params.Speed, speed)
}

// SetShoot 触发射击动画
func (s *PlayerAnimationSystem) SetShoot() {
	if animator := s.animator(); animator != nil && s.params.Shoot != "" {
		animator.SetTrigger(s.params.Shoot)
	}
}

// SetAim 设置瞄准状态
func (s *PlayerAnimationSystem) SetAim(isAiming bool) {
	if animator := s.animator(); animator != nil && s.params.Aim != "" {
		animator.SetBool(s.params.Aim, isAiming)
	}
}

// SetDie 触发死亡动画
func (s *PlayerAnimationSystem) SetDie() {
	if animator := s.animator(); animator != nil && s.params.Die != "" {
		animator.SetTrigger(s.params.Die)
	}
}
