package game

import (
	"log"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/samber/lo"
)

// QuestManager 跟踪当前任务的送达进度
//
// 同一种类出现在多个目标中时，需求数量合并计算。
// 不属于任何目标的动物也会被计数，但不影响完成判定。
type QuestManager struct {
	quest     *config.QuestData
	collected map[types.AnimalType]int
}

// NewQuestManager 创建任务管理器，quest 可为 nil
func NewQuestManager(quest *config.QuestData) *QuestManager {
	return &QuestManager{
		quest:     quest,
		collected: make(map[types.AnimalType]int),
	}
}

// CurrentQuest 返回当前任务
func (qm *QuestManager) CurrentQuest() *config.QuestData {
	return qm.quest
}

// SetQuest 切换任务并清空进度
func (qm *QuestManager) SetQuest(quest *config.QuestData) {
	qm.quest = quest
	qm.Reset()
}

// OnAnimalCollected 记录一只送达的动物
func (qm *QuestManager) OnAnimalCollected(animalType types.AnimalType) {
	qm.collected[animalType]++
	collected, required := qm.Progress(animalType)
	if required > 0 {
		log.Printf("[QuestManager] %s delivered (%d/%d)", animalType, collected, required)
	} else {
		log.Printf("[QuestManager] %s delivered (not a quest target)", animalType)
	}
	if qm.IsComplete() {
		log.Printf("[QuestManager] Quest '%s' complete", qm.quest.ID)
	}
}

// Collected 返回某种类的送达数量（含超出需求的部分）
func (qm *QuestManager) Collected(animalType types.AnimalType) int {
	return qm.collected[animalType]
}

// Progress 返回某种类计入任务的送达数量和需求数量
// 计入数量不超过需求数量
func (qm *QuestManager) Progress(animalType types.AnimalType) (collected, required int) {
	required = qm.requiredFor(animalType)
	return lo.Min([]int{qm.collected[animalType], required}), required
}

// TotalProgress 返回整个任务计入的送达数量和总需求数量
func (qm *QuestManager) TotalProgress() (collected, required int) {
	if qm.quest == nil {
		return 0, 0
	}
	targets := lo.Uniq(lo.Map(qm.quest.Objectives, func(o config.QuestObjective, _ int) types.AnimalType {
		return o.AnimalType
	}))
	collected = lo.SumBy(targets, func(animalType types.AnimalType) int {
		c, _ := qm.Progress(animalType)
		return c
	})
	return collected, qm.quest.TotalRequired()
}

// IsComplete 所有目标都已满足
// 没有任务或任务没有目标时视为未完成
func (qm *QuestManager) IsComplete() bool {
	if qm.quest == nil || len(qm.quest.Objectives) == 0 {
		return false
	}
	collected, required := qm.TotalProgress()
	return collected >= required
}

// Reset 清空送达进度（重开关卡时使用）
func (qm *QuestManager) Reset() {
	qm.collected = make(map[types.AnimalType]int)
}

// requiredFor 汇总某种类在所有目标中的需求数量
func (qm *QuestManager) requiredFor(animalType types.AnimalType) int {
	if qm.quest == nil {
		return 0
	}
	return lo.SumBy(lo.Filter(qm.quest.Objectives, func(o config.QuestObjective, _ int) bool {
		return o.AnimalType == animalType
	}), func(o config.QuestObjective) int {
		return o.RequiredAmount
	})
}
