package components

// PhysicsBodyComponent 简化的物理刚体
//
// 只用于触发检测：CollisionEnabled 为 false 时实体不参与任何重叠检测。
// Kinematic 为 true 时实体不受自主运动影响（被背着或已送达的动物）。
type PhysicsBodyComponent struct {
	Radius           float64 // 碰撞半径
	CollisionEnabled bool    // 是否参与碰撞检测
	Kinematic        bool    // 是否为运动学刚体
}
