package components

import "github.com/decker502/farmrescue/pkg/ecs"

// TransformComponent 存储实体在世界中的位置和朝向
//
// 坐标系：Y 轴向上，地面为 XZ 平面，Yaw 为绕 Y 轴的旋转角度（度）。
// 当 Parent 不为 0 时，X/Y/Z 由 TransformSystem 根据父实体位置加上
// LocalX/LocalY/LocalZ 计算得出，不应直接修改。
type TransformComponent struct {
	X, Y, Z float64 // 世界坐标
	Yaw     float64 // 朝向（度）

	Parent                 ecs.EntityID // 父实体（0 表示无父实体）
	LocalX, LocalY, LocalZ float64      // 相对父实体的偏移
}

// HasParent 是否挂载在其他实体上
func (t *TransformComponent) HasParent() bool {
	return t.Parent != ecs.InvalidEntity
}

// AttachTo 挂载到父实体的本地原点
func (t *TransformComponent) AttachTo(parent ecs.EntityID) {
	t.Parent = parent
	t.LocalX, t.LocalY, t.LocalZ = 0, 0, 0
}

// Detach 从父实体脱离，保留当前世界坐标
func (t *TransformComponent) Detach() {
	t.Parent = ecs.InvalidEntity
	t.LocalX, t.LocalY, t.LocalZ = 0, 0, 0
}
