package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// 闲逛参数
const (
	wanderArriveDistance = 0.05 // 距离目标小于此值视为到达
	wanderMinPause       = 0.5  // 到达后停顿时间范围（秒）
	wanderMaxPause       = 2.0
)

// WanderSystem 让空闲的动物在出生点附近随机走动
type WanderSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewWanderSystem 创建闲逛系统
func NewWanderSystem(em *ecs.EntityManager, rng *rand.Rand) *WanderSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &WanderSystem{entityManager: em, rng: rng}
}

// Update 移动所有启用闲逛的动物
// 运动学刚体和挂载在其他实体上的动物不会移动
func (s *WanderSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.WanderComponent, *components.TransformComponent](s.entityManager)
	for _, id := range ids {
		wander, _ := ecs.GetComponent[*components.WanderComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if !wander.Enabled || transform.HasParent() {
			continue
		}
		if body, ok := ecs.GetComponent[*components.PhysicsBodyComponent](s.entityManager, id); ok && body.Kinematic {
			continue
		}

		s.step(wander, transform, deltaTime)
	}
}

// step 推进单个动物的闲逛状态
func (s *WanderSystem) step(wander *components.WanderComponent, transform *components.TransformComponent, deltaTime float64) {
	if wander.PauseTimer > 0 {
		wander.PauseTimer -= deltaTime
		return
	}

	if !wander.HasTarget {
		angle := s.rng.Float64() * 2 * math.Pi
		distance := s.rng.Float64() * wander.Radius
		wander.TargetX = wander.HomeX + math.Cos(angle)*distance
		wander.TargetZ = wander.HomeZ + math.Sin(angle)*distance
		wander.HasTarget = true
	}

	dx := wander.TargetX - transform.X
	dz := wander.TargetZ - transform.Z
	distance := math.Hypot(dx, dz)
	move := wander.Speed * deltaTime

	if distance <= wanderArriveDistance || move >= distance {
		transform.X = wander.TargetX
		transform.Z = wander.TargetZ
		wander.HasTarget = false
		wander.PauseTimer = wanderMinPause + s.rng.Float64()*(wanderMaxPause-wanderMinPause)
		return
	}

	transform.X += dx / distance * move
	transform.Z += dz / distance * move
	// 朝向移动方向（Yaw 0 指向 +Z）
	transform.Yaw = math.Atan2(dx, dz) * 180 / math.Pi
}
