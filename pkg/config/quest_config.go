package config

import (
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/samber/lo"
)

// QuestObjective 任务目标：在场景中放置指定数量的某种动物
type QuestObjective struct {
	AnimalType     types.AnimalType `yaml:"animalType"`     // 目标动物种类
	RequiredAmount int              `yaml:"requiredAmount"` // 需要的数量（>= 0）
}

// QuestData 一个任务的配置，目标按顺序处理
type QuestData struct {
	ID         string           `yaml:"id"`
	Title      string           `yaml:"title"`
	Objectives []QuestObjective `yaml:"objectives"`
}

// TotalRequired 返回所有目标需要的动物总数
func (q *QuestData) TotalRequired() int {
	return lo.SumBy(q.Objectives, func(objective QuestObjective) int {
		return objective.RequiredAmount
	})
}
