package systems

import (
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/entities"
)

// EffectSystem 生成一次性视觉特效
// 特效实体带有 LifetimeComponent，到期后由 LifetimeSystem 删除
type EffectSystem struct {
	entityManager *ecs.EntityManager
	spawned       int
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{entityManager: em}
}

// SpawnEffect 在指定位置生成特效
func (s *EffectSystem) SpawnEffect(name string, x, y, z float64) {
	entities.NewEffectEntity(s.entityManager, name, x, y, z)
	s.spawned++
}

// SpawnedCount 返回累计生成的特效数量
func (s *EffectSystem) SpawnedCount() int {
	return s.spawned
}
