package systems

import (
	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
)

// maxTransformDepth 父子层级的最大深度，超过时视为循环引用
const maxTransformDepth = 8

// TransformSystem 根据父实体位置计算子实体的世界坐标
type TransformSystem struct {
	entityManager *ecs.EntityManager
}

// NewTransformSystem 创建变换系统
func NewTransformSystem(em *ecs.EntityManager) *TransformSystem {
	return &TransformSystem{entityManager: em}
}

// Update 更新所有挂载在父实体上的变换
// 父实体被删除时子实体保留当前世界坐标并脱离
func (s *TransformSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager) {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok || !transform.HasParent() {
			continue
		}
		s.resolve(transform, 0)
	}
}

// resolve 递归计算世界坐标
func (s *TransformSystem) resolve(transform *components.TransformComponent, depth int) {
	if !transform.HasParent() {
		return
	}
	if depth >= maxTransformDepth {
		transform.Detach()
		return
	}

	parent, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, transform.Parent)
	if !ok {
		transform.Detach()
		return
	}
	s.resolve(parent, depth+1)

	transform.X = parent.X + transform.LocalX
	transform.Y = parent.Y + transform.LocalY
	transform.Z = parent.Z + transform.LocalZ
}
