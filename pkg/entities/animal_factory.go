package entities

import (
	"fmt"
	"strings"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/types"
)

// AnimalSpawnInfo 实例化动物时的放置信息
type AnimalSpawnInfo struct {
	X, Y, Z    float64
	Yaw        float64 // 朝向（度）
	SpawnPoint int     // 占用的生成点编号
	FromQuest  bool    // 是否由任务目标生成
}

// NewAnimalEntity 根据预制体模板创建动物实体
//
// 实体创建时即带有完整的 AnimalItemComponent，种类由调用方指定
// （任务目标的种类或随机补位选中的种类），不会再被修改。
//
// 参数:
//   - em: EntityManager 实例
//   - template: 预制体模板
//   - animalType: 动物种类
//   - info: 放置信息
//
// 返回: 创建的实体ID
func NewAnimalEntity(em *ecs.EntityManager, template *config.PrefabTemplate, animalType types.AnimalType, info AnimalSpawnInfo) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.TransformComponent{
		X:   info.X,
		Y:   info.Y,
		Z:   info.Z,
		Yaw: info.Yaw,
	})

	item := components.NewAnimalItemComponent(animalType)
	item.CollectSound = template.CollectSound
	item.CollectEffect = template.CollectEffect
	em.AddComponent(id, item)

	em.AddComponent(id, &components.PhysicsBodyComponent{
		Radius:           template.Radius,
		CollisionEnabled: true,
		Kinematic:        false,
	})

	em.AddComponent(id, &components.WanderComponent{
		Enabled: template.Speed() > 0,
		Speed:   template.Speed(),
		Radius:  template.WanderRadius,
		HomeX:   info.X,
		HomeZ:   info.Z,
	})

	em.AddComponent(id, &components.VisibilityComponent{Active: true})

	em.AddComponent(id, &components.PrefabInstanceComponent{
		PrefabName: template.Name,
		SpawnPoint: info.SpawnPoint,
		FromQuest:  info.FromQuest,
	})

	r, g, b := ParseHexColor(template.Color)
	em.AddComponent(id, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Radius: template.Radius,
		R:      r,
		G:      g,
		B:      b,
		Label:  animalType.String(),
	})

	return id
}

// ParseHexColor 解析 "#RRGGBB" 格式的颜色，格式错误时返回浅灰色
func ParseHexColor(hex string) (uint8, uint8, uint8) {
	var r, g, b uint8
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 200, 200, 200
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return 200, 200, 200
	}
	return r, g, b
}
