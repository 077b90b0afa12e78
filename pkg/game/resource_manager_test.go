package game

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/farmrescue/pkg/types"
)

const testLevelsYAML = `
levels:
  - level: 1
    quest:
      id: q1
      objectives:
        - animalType: Cow
          requiredAmount: 1
    spawnPoints:
      - {x: 1, y: 0, z: 1}
      - {x: 2, y: 0, z: 2}
  - level: 2
    timeLimit: 60
`

func newTestResources() fstest.MapFS {
	return fstest.MapFS{
		"assets/config/levels.yaml":  {Data: []byte(testLevelsYAML)},
		"assets/config/spawner.yaml": {Data: []byte("autoLoadFromResources: true\nprefabsFolderPath: prefabs\nseed: 7\n")},
		"assets/prefabs/Cow.yaml":    {Data: []byte("name: Cow\n")},
		"assets/prefabs/Hen.yaml":    {Data: []byte("name: Hen\nanimalType: Chicken\n")},
	}
}

// TestResourceManagerLoadAll 测试完整加载流程
func TestResourceManagerLoadAll(t *testing.T) {
	rm := NewResourceManager(newTestResources())
	if err := rm.LoadAll(); err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if rm.GetSpawnerConfig().Seed != 7 {
		t.Errorf("seed = %d, want 7", rm.GetSpawnerConfig().Seed)
	}
	if rm.LevelCount() != 2 {
		t.Errorf("LevelCount() = %d, want 2", rm.LevelCount())
	}

	registry := rm.GetPrefabRegistry()
	if registry.Len() != 2 {
		t.Fatalf("registry.Len() = %d, want 2", registry.Len())
	}
	if template, ok := registry.Resolve(types.AnimalChicken); !ok || template.Name != "Hen" {
		t.Errorf("Chicken should resolve to Hen, got %v (ok=%v)", template, ok)
	}

	level, err := rm.GetLevelConfig(5)
	if err != nil {
		t.Fatalf("GetLevelConfig(5) error: %v", err)
	}
	if level.Level != 2 {
		t.Errorf("levels past the last should reuse level 2, got %d", level.Level)
	}
}

// TestResourceManagerDefaultSpawner spawner.yaml 缺失时使用默认配置
func TestResourceManagerDefaultSpawner(t *testing.T) {
	resources := newTestResources()
	delete(resources, "assets/config/spawner.yaml")

	rm := NewResourceManager(resources)
	output := captureLog(t, func() {
		if err := rm.LoadAll(); err != nil {
			t.Fatalf("LoadAll() error: %v", err)
		}
	})
	if !strings.Contains(output, "using defaults") {
		t.Errorf("expected default-config warning, got %q", output)
	}
	if !rm.GetSpawnerConfig().AutoLoadFromResources {
		t.Error("default config should auto load prefabs")
	}
	if rm.GetPrefabRegistry().Len() != 2 {
		t.Errorf("registry.Len() = %d, want 2", rm.GetPrefabRegistry().Len())
	}
}

// TestResourceManagerErrors 关卡配置缺失或无效
func TestResourceManagerErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fstest.MapFS)
		errMsg string
	}{
		{
			name:   "missing levels",
			mutate: func(m fstest.MapFS) { delete(m, "assets/config/levels.yaml") },
			errMsg: "failed to read assets/config/levels.yaml",
		},
		{
			name: "invalid levels",
			mutate: func(m fstest.MapFS) {
				m["assets/config/levels.yaml"] = &fstest.MapFile{Data: []byte("levels: []\n")}
			},
			errMsg: "at least one level is required",
		},
		{
			name: "invalid spawner",
			mutate: func(m fstest.MapFS) {
				m["assets/config/spawner.yaml"] = &fstest.MapFile{Data: []byte("seed: [\n")}
			},
			errMsg: "failed to load assets/config/spawner.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := newTestResources()
			tt.mutate(resources)
			err := NewResourceManager(resources).LoadAll()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
		})
	}
}

// TestGetLevelConfigBeforeLoad 未加载时返回错误
func TestGetLevelConfigBeforeLoad(t *testing.T) {
	rm := NewResourceManager(newTestResources())
	if _, err := rm.GetLevelConfig(1); err == nil {
		t.Error("expected error before LoadAll")
	}
	if rm.LevelCount() != 0 {
		t.Errorf("LevelCount() = %d, want 0", rm.LevelCount())
	}
}

// TestValidateLevels 检查关卡与预制体的一致性
func TestValidateLevels(t *testing.T) {
	rm := NewResourceManager(newTestResources())
	if issues := rm.ValidateLevels(); len(issues) != 1 {
		t.Errorf("ValidateLevels() before load = %v, want one issue", issues)
	}

	resources := newTestResources()
	resources["assets/config/levels.yaml"] = &fstest.MapFile{Data: []byte(`
levels:
  - level: 1
    quest:
      objectives:
        - animalType: Cow
          requiredAmount: 2
        - animalType: Tiger
          requiredAmount: 1
        - animalType: tiger
          requiredAmount: 0
    spawnPoints:
      - {x: 1, y: 0, z: 1}
  - level: 2
    quest:
      objectives:
        - animalType: Chicken
          requiredAmount: 1
    spawnPoints:
      - {x: 1, y: 0, z: 1}
    checkpoints:
      - position: {x: 5, y: 0, z: 5}
`)}
	rm = NewResourceManager(resources)
	if err := rm.LoadAll(); err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	issues := rm.ValidateLevels()
	want := []string{
		"level 1: no prefab for quest animal Tiger",
		"level 1: quest needs 3 animals but only 1 spawn points",
		"level 1: no checkpoint to deliver animals",
	}
	if len(issues) != len(want) {
		t.Fatalf("ValidateLevels() = %v, want %v", issues, want)
	}
	for i := range want {
		if issues[i] != want[i] {
			t.Errorf("issue[%d] = %q, want %q", i, issues[i], want[i])
		}
	}
}
