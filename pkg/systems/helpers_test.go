package systems

import (
	"bytes"
	"log"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/decker502/farmrescue/pkg/entities"
	"github.com/decker502/farmrescue/pkg/types"
)

// stubQuestSource 固定返回一个任务
type stubQuestSource struct {
	quest *config.QuestData
}

func (s *stubQuestSource) CurrentQuest() *config.QuestData {
	return s.quest
}

// stubLevel 固定关卡
type stubLevel int

func (l stubLevel) GetCurrentLevel() int {
	return int(l)
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

// recordingEffects 记录生成过的特效
type recordingEffects struct {
	names []string
}

func (r *recordingEffects) SpawnEffect(name string, x, y, z float64) {
	r.names = append(r.names, name)
}

// recordingProgress 记录送达通知
type recordingProgress struct {
	collected []types.AnimalType
}

func (r *recordingProgress) OnAnimalCollected(animalType types.AnimalType) {
	r.collected = append(r.collected, animalType)
}

// captureLog 捕获执行 fn 期间的日志输出
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	fn()
	return buf.String()
}

// newTestTemplate 创建测试用预制体模板
func newTestTemplate(name string) *config.PrefabTemplate {
	return &config.PrefabTemplate{
		Name:          name,
		Radius:        config.DefaultPrefabRadius,
		WanderRadius:  config.DefaultWanderRadius,
		CollectSound:  config.DefaultCollectSound,
		CollectEffect: config.DefaultCollectEffect,
	}
}

// newTestRegistry 为每个种类注册一个以种类命名的模板
func newTestRegistry(animalTypes ...types.AnimalType) *PrefabRegistry {
	registry := NewPrefabRegistry()
	for _, animalType := range animalTypes {
		registry.Register(animalType, newTestTemplate(animalType.String()))
	}
	return registry
}

// newTestSpawner 创建带 pointCount 个生成点的生成系统
func newTestSpawner(pointCount int, registry *PrefabRegistry, quest *config.QuestData, level int) (*ecs.EntityManager, *AnimalSpawnerSystem) {
	em := ecs.NewEntityManager()
	points := make([]config.Vec3Config, pointCount)
	for i := range points {
		points[i] = config.Vec3Config{X: float64(i), Z: float64(i * 2)}
	}
	entities.CreateSpawnPoints(em, points)

	spawner := NewAnimalSpawnerSystem(em, registry, &stubQuestSource{quest: quest}, stubLevel(level), rand.New(rand.NewSource(42)), config.DefaultSpawnYaw)
	spawner.InitializeSpawnPoints()
	return em, spawner
}

// animalTypeOf 读取动物种类
func animalTypeOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) types.AnimalType {
	t.Helper()
	item, ok := ecs.GetComponent[*components.AnimalItemComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no AnimalItemComponent", id)
	}
	return item.AnimalType()
}

// prefabInstanceOf 读取实例信息
func prefabInstanceOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PrefabInstanceComponent {
	t.Helper()
	instance, ok := ecs.GetComponent[*components.PrefabInstanceComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PrefabInstanceComponent", id)
	}
	return instance
}
