package scenes

import (
	"math"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 一帧的玩家输入
type InputState struct {
	MoveX, MoveZ float64 // 移动方向，各分量取值 -1、0、1
	Restart      bool
	NextLevel    bool
}

// InputSource 输入来源
type InputSource interface {
	Poll() InputState
}

// KeyboardInput 从键盘读取输入：方向键/WASD 移动，R 重开，N 或 Enter 进入下一关
type KeyboardInput struct{}

// Poll 读取当前帧的键盘状态
func (KeyboardInput) Poll() InputState {
	var input InputState
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		input.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		input.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		input.MoveZ--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		input.MoveZ++
	}
	input.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	input.NextLevel = inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	return input
}

// movePlayer 按输入移动玩家，限制在场地范围内
func (s *GameScene) movePlayer(input InputState, deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player)
	if !ok {
		return
	}

	length := math.Hypot(input.MoveX, input.MoveZ)
	if player.Disabled || length == 0 {
		s.animationSystem.SetMovement(false, 0)
		return
	}

	dx := input.MoveX / length
	dz := input.MoveZ / length
	transform.X = clamp(transform.X+dx*player.MoveSpeed*deltaTime, player.Radius, WorldWidth-player.Radius)
	transform.Z = clamp(transform.Z+dz*player.MoveSpeed*deltaTime, player.Radius, WorldDepth-player.Radius)
	transform.Yaw = math.Atan2(dx, dz) * 180 / math.Pi

	s.animationSystem.SetMovement(true, player.MoveSpeed)
}

// resetPlayer 把玩家放回出生点并恢复操作
func (s *GameScene) resetPlayer() {
	if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.player); ok {
		start := s.levelConfig.PlayerStart
		transform.X, transform.Y, transform.Z = start.X, start.Y, start.Z
		transform.Yaw = 0
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player); ok {
		player.Disabled = false
	}
	s.animationSystem.SetMovement(false, 0)
	s.transformSystem.Update(0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
