package components

// PlayerComponent 标记实体为玩家角色
type PlayerComponent struct {
	MoveSpeed float64 // 移动速度（单位/秒）
	Radius    float64 // 触发检测半径
	Disabled  bool    // 死亡或关卡结束后禁止操作
}
