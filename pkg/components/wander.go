package components

// WanderComponent 动物在出生点附近闲逛的自主运动
type WanderComponent struct {
	Enabled bool    // 是否启用自主运动
	Speed   float64 // 移动速度（单位/秒）
	Radius  float64 // 闲逛半径（以出生点为中心）

	HomeX, HomeZ     float64 // 出生点
	TargetX, TargetZ float64 // 当前目标点
	HasTarget        bool    // 是否已选定目标点
	PauseTimer       float64 // 到达目标后的停顿剩余时间（秒）
}
