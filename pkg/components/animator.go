package components

// AnimatorComponent 存储动画状态机参数
// 渲染层读取这些参数决定播放哪段动画，Trigger 被读取后清零
type AnimatorComponent struct {
	Floats   map[string]float64
	Bools    map[string]bool
	Triggers map[string]bool
}

// NewAnimatorComponent 创建空的动画参数表
func NewAnimatorComponent() *AnimatorComponent {
	return &AnimatorComponent{
		Floats:   make(map[string]float64),
		Bools:    make(map[string]bool),
		Triggers: make(map[string]bool),
	}
}

// SetFloat 设置浮点参数
func (a *AnimatorComponent) SetFloat(name string, value float64) {
	a.Floats[name] = value
}

// SetBool 设置布尔参数
func (a *AnimatorComponent) SetBool(name string, value bool) {
	a.Bools[name] = value
}

// SetTrigger 设置触发器
func (a *AnimatorComponent) SetTrigger(name string) {
	a.Triggers[name] = true
}

// ConsumeTrigger 读取并清除触发器
func (a *AnimatorComponent) ConsumeTrigger(name string) bool {
	if !a.Triggers[name] {
		return false
	}
	delete(a.Triggers, name)
	return true
}
