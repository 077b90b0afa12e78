package components

// TimerComponent 单次计时器组件
// 用于延迟触发的行为（如死亡后延迟显示失败面板）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "show_lose_panel"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}
