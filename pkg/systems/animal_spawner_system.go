package systems

import (
	"log"
	"math/rand"
	"sort"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/entities"
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/samber/lo"
)

// AnimalSpawnerSystem 根据任务目标生成动物
//
// 一轮生成分两个阶段：
//  1. 按顺序处理任务目标，每个目标从空闲生成点中随机选取 requiredAmount 个
//  2. 剩余的空闲生成点用当前关卡允许的种类随机补位（可重复）
//
// 同一轮中每个生成点最多只有一只动物，由 SpawnAllocator 保证。
type AnimalSpawnerSystem struct {
	entityManager *ecs.EntityManager
	registry      *PrefabRegistry
	questSource   QuestSource
	levelProvider LevelProvider
	rng           *rand.Rand
	spawnYaw      float64

	spawnPoints    []ecs.EntityID // 按编号排列的生成点实体
	allocator      *SpawnAllocator
	spawnedAnimals []ecs.EntityID // 本轮生成的所有动物
}

// NewAnimalSpawnerSystem 创建动物生成系统
//
// 参数:
//   - em: EntityManager 实例
//   - registry: 预制体注册表
//   - questSource: 任务来源
//   - levelProvider: 关卡进度（可为 nil，按第 1 关处理）
//   - rng: 随机数源（可为 nil，使用固定种子）
//   - spawnYaw: 生成朝向（度）
func NewAnimalSpawnerSystem(
	em *ecs.EntityManager,
	registry *PrefabRegistry,
	questSource QuestSource,
	levelProvider LevelProvider,
	rng *rand.Rand,
	spawnYaw float64,
) *AnimalSpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if registry == nil {
		registry = NewPrefabRegistry()
	}
	return &AnimalSpawnerSystem{
		entityManager:  em,
		registry:       registry,
		questSource:    questSource,
		levelProvider:  levelProvider,
		rng:            rng,
		spawnYaw:       spawnYaw,
		allocator:      NewSpawnAllocator(0, rng),
		spawnedAnimals: make([]ecs.EntityID, 0),
	}
}

// InitializeSpawnPoints 收集场景中所有生成点（按 SpawnPointComponent.Index 排序）
// 返回生成点数量
func (s *AnimalSpawnerSystem) InitializeSpawnPoints() int {
	ids := ecs.GetEntitiesWith2[*components.SpawnPointComponent, *components.TransformComponent](s.entityManager)
	sort.SliceStable(ids, func(i, j int) bool {
		pi, _ := ecs.GetComponent[*components.SpawnPointComponent](s.entityManager, ids[i])
		pj, _ := ecs.GetComponent[*components.SpawnPointComponent](s.entityManager, ids[j])
		return pi.Index < pj.Index
	})
	s.SetSpawnPoints(ids)

	if len(ids) == 0 {
		log.Printf("[AnimalSpawner] Warning: No spawn points found in scene")
	} else {
		log.Printf("[AnimalSpawner] Found %d spawn points", len(ids))
	}
	return len(ids)
}

// SetSpawnPoints 直接设置生成点列表，列表顺序即生成点编号
func (s *AnimalSpawnerSystem) SetSpawnPoints(ids []ecs.EntityID) {
	s.spawnPoints = append([]ecs.EntityID(nil), ids...)
	s.allocator = NewSpawnAllocator(len(s.spawnPoints), s.rng)
}

// SpawnPointCount 返回生成点数量
func (s *AnimalSpawnerSystem) SpawnPointCount() int {
	return len(s.spawnPoints)
}

// SpawnAnimalsFromQuest 根据当前任务生成动物
//
// 任务或目标为空时直接返回，不生成任何动物。
// 如果上一轮的动物尚未清理，会先清理，保证生成点不被重复占用。
//
// 返回: 本次生成的动物数量
func (s *AnimalSpawnerSystem) SpawnAnimalsFromQuest() int {
	if s.questSource == nil {
		log.Printf("[AnimalSpawner] Error: quest source is nil!")
		return 0
	}
	quest := s.questSource.CurrentQuest()
	if quest == nil {
		log.Printf("[AnimalSpawner] Error: current quest is nil!")
		return 0
	}
	if len(quest.Objectives) == 0 {
		log.Printf("[AnimalSpawner] Warning: Quest '%s' has no objectives!", quest.ID)
		return 0
	}

	if len(s.spawnedAnimals) > 0 {
		log.Printf("[AnimalSpawner] Warning: %d animals from the previous cycle still alive, clearing first", len(s.spawnedAnimals))
		s.ClearSpawnedAnimals()
	}
	s.allocator.Reset()

	spawned := 0
	for _, objective := range quest.Objectives {
		spawned += s.spawnAnimalsForObjective(objective)
	}
	spawned += s.spawnRandomAnimalsInRemainingPoints()

	log.Printf("[AnimalSpawner] Spawned %d animals (%d spawn points)", spawned, len(s.spawnPoints))
	return spawned
}

// spawnAnimalsForObjective 为单个任务目标生成动物
func (s *AnimalSpawnerSystem) spawnAnimalsForObjective(objective config.QuestObjective) int {
	template, ok := s.registry.Resolve(objective.AnimalType)
	if !ok {
		log.Printf("[AnimalSpawner] Warning: No prefab found for %s!", objective.AnimalType)
		return 0
	}

	spawned := 0
	for i := 0; i < objective.RequiredAmount; i++ {
		index, ok := s.allocator.AllocateRandom()
		if !ok {
			log.Printf("[AnimalSpawner] Warning: No free spawn point left for %s (%d/%d spawned)!",
				objective.AnimalType, spawned, objective.RequiredAmount)
			break
		}

		if s.spawnAt(index, template, objective.AnimalType, true) {
			spawned++
		}
	}

	log.Printf("[AnimalSpawner] Spawned %d %s", spawned, objective.AnimalType)
	return spawned
}

// spawnRandomAnimalsInRemainingPoints 用关卡允许的种类填满剩余生成点
func (s *AnimalSpawnerSystem) spawnRandomAnimalsInRemainingPoints() int {
	if s.registry.Len() == 0 {
		log.Printf("[AnimalSpawner] Warning: No prefabs available for random spawning!")
		return 0
	}

	freeIndices := s.allocator.FreeIndices()
	if len(freeIndices) == 0 {
		log.Printf("[AnimalSpawner] No free spawn points left for random animals")
		return 0
	}

	level := s.currentLevel()
	candidates := s.randomCandidates(level)
	if len(candidates) == 0 {
		log.Printf("[AnimalSpawner] Warning: No prefabs suitable for level %d!", level)
		return 0
	}

	spawned := 0
	for _, index := range freeIndices {
		animalType := candidates[s.rng.Intn(len(candidates))]
		template, _ := s.registry.Resolve(animalType)
		if !s.allocator.Claim(index) {
			continue
		}
		if s.spawnAt(index, template, animalType, false) {
			spawned++
		}
	}

	log.Printf("[AnimalSpawner] Spawned %d random animals in remaining spawn points (level %d)", spawned, level)
	return spawned
}

// randomCandidates 返回已注册且当前关卡允许的种类（按枚举顺序）
func (s *AnimalSpawnerSystem) randomCandidates(level int) []types.AnimalType {
	allowed := types.AllowedAnimalTypesForLevel(level)
	return lo.Filter(s.registry.Types(), func(animalType types.AnimalType, _ int) bool {
		return lo.Contains(allowed, animalType)
	})
}

// currentLevel 获取当前关卡，未注入关卡来源时按第 1 关处理
func (s *AnimalSpawnerSystem) currentLevel() int {
	if s.levelProvider == nil {
		return 1
	}
	return s.levelProvider.GetCurrentLevel()
}

// spawnAt 在指定生成点实例化动物并记录
func (s *AnimalSpawnerSystem) spawnAt(index int, template *config.PrefabTemplate, animalType types.AnimalType, fromQuest bool) bool {
	if index < 0 || index >= len(s.spawnPoints) {
		return false
	}
	point, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.spawnPoints[index])
	if !ok {
		log.Printf("[AnimalSpawner] Warning: Spawn point %d has no transform, skipping", index)
		return false
	}

	animal := entities.NewAnimalEntity(s.entityManager, template, animalType, entities.AnimalSpawnInfo{
		X:          point.X,
		Y:          point.Y,
		Z:          point.Z,
		Yaw:        s.spawnYaw,
		SpawnPoint: index,
		FromQuest:  fromQuest,
	})
	s.spawnedAnimals = append(s.spawnedAnimals, animal)
	return true
}

// ClearSpawnedAnimals 删除本轮生成的所有动物并释放所有生成点
// 没有动物时调用不产生任何效果
func (s *AnimalSpawnerSystem) ClearSpawnedAnimals() {
	for _, animal := range s.spawnedAnimals {
		s.entityManager.DestroyEntity(animal)
	}
	s.spawnedAnimals = s.spawnedAnimals[:0]
	s.allocator.Reset()
}

// RespawnAnimals 清理后按当前任务重新生成
// 返回: 本次生成的动物数量
func (s *AnimalSpawnerSystem) RespawnAnimals() int {
	s.ClearSpawnedAnimals()
	return s.SpawnAnimalsFromQuest()
}

// SpawnedAnimals 返回本轮生成的动物（副本）
func (s *AnimalSpawnerSystem) SpawnedAnimals() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.spawnedAnimals...)
}

// UsedSpawnPointIndices 返回本轮已占用的生成点编号（升序）
func (s *AnimalSpawnerSystem) UsedSpawnPointIndices() []int {
	return s.allocator.UsedIndices()
}
