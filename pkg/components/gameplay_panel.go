package components

// GamePlayPanelComponent 游戏内 HUD 面板状态
// 渲染系统只读取这些字段，所有修改都通过 GamePlayPanelSystem 完成
type GamePlayPanelComponent struct {
	CountDownText        string  // 倒计时文本（剩余秒数向上取整）
	CountDownTextVisible bool    // 剩余时间为 0 时隐藏文本
	CountDownFill        float64 // 倒计时进度条填充比例 [0, 1]

	WinPanelVisible  bool
	LosePanelVisible bool
	Stars            int // 胜利面板显示的星级
	Reward           int // 胜利面板显示的奖励

	HealthCurrent int
	HealthMax     int
}
