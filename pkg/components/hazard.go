package components

// HazardComponent 危险区域（蜂巢、泥坑等）
// 玩家停留在范围内时，每隔 Interval 秒受到 Damage 点伤害
type HazardComponent struct {
	Radius   float64
	Damage   int
	Interval float64

	Cooldown float64 // 距离下次可造成伤害的剩余时间
}
