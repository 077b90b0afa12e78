package components

import "github.com/decker502/farmrescue/pkg/ecs"

// CarrierComponent 能够背起动物的角色
// 一次只能背一只动物，该约束由 PlayerCarrySystem 保证
type CarrierComponent struct {
	AttachPoint ecs.EntityID // 动物挂载点
	Carried     ecs.EntityID // 当前背着的动物（0 表示空手）
}

// IsCarrying 是否正背着动物
func (c *CarrierComponent) IsCarrying() bool {
	return c.Carried != ecs.InvalidEntity
}
