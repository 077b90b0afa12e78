package components

import "github.com/decker502/farmrescue/pkg/types"

// AnimalState 动物收集物的生命周期状态
type AnimalState int

const (
	AnimalIdle      AnimalState = iota // 在场景中等待被捡起
	AnimalCarried                      // 被玩家背着
	AnimalDelivered                    // 已送达检查点（重置前为终态）
)

// String 返回状态名称（用于日志）
func (s AnimalState) String() string {
	switch s {
	case AnimalIdle:
		return "Idle"
	case AnimalCarried:
		return "Carried"
	case AnimalDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// AnimalItemComponent 标记实体为可收集的动物
//
// 不变量：Collected 为 true 时 PickedUp 一定为 false。
// 状态迁移只能通过 AnimalItemSystem 完成。
type AnimalItemComponent struct {
	animalType types.AnimalType

	PickedUp  bool // 是否正被背着
	Collected bool // 是否已送达

	CollectSound  string // 捡起时的音效ID，为空则不播放
	CollectEffect string // 捡起时的特效名称，为空则不生成
}

// NewAnimalItemComponent 创建指定种类的动物组件，种类在创建时确定
func NewAnimalItemComponent(animalType types.AnimalType) *AnimalItemComponent {
	return &AnimalItemComponent{animalType: animalType}
}

// AnimalType 返回动物种类
func (a *AnimalItemComponent) AnimalType() types.AnimalType {
	return a.animalType
}

// SetAnimalType 设置动物种类，仅在生成配置阶段使用
func (a *AnimalItemComponent) SetAnimalType(animalType types.AnimalType) {
	a.animalType = animalType
}

// State 根据两个标记位计算当前状态
func (a *AnimalItemComponent) State() AnimalState {
	switch {
	case a.Collected:
		return AnimalDelivered
	case a.PickedUp:
		return AnimalCarried
	default:
		return AnimalIdle
	}
}

// CanBePickedUp 是否允许被捡起（未被背着且未送达）
func (a *AnimalItemComponent) CanBePickedUp() bool {
	return !a.PickedUp && !a.Collected
}
