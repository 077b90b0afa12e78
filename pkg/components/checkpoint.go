package components

import "github.com/decker502/farmrescue/pkg/ecs"

// CheckpointComponent 检查点，玩家在这里放下动物得分
type CheckpointComponent struct {
	DropPoint  ecs.EntityID // 动物放置点（带 TransformComponent 的子实体）
	DropSound  string       // 放下时的音效ID
	DropEffect string       // 放下时的特效名称
	Radius     float64      // 触发半径

	PlayerInside bool // 玩家当前是否在范围内（用于边沿触发）
}
