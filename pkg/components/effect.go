package components

// EffectComponent 一次性视觉特效（捡起、放下的闪光圈）
type EffectComponent struct {
	Name      string
	MaxRadius float64 // 特效扩散到的最大半径
}
