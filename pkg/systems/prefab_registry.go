package systems

import (
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/decker502/farmrescue/pkg/config"
	"github.com/decker502/farmrescue/pkg/types"
	"github.com/samber/lo"
)

// PrefabRegistry 动物种类 -> 预制体模板的映射
//
// 每个种类最多对应一个模板。重复注册时保留先注册的模板并输出警告。
type PrefabRegistry struct {
	prefabs map[types.AnimalType]*config.PrefabTemplate
}

// NewPrefabRegistry 创建空的注册表
func NewPrefabRegistry() *PrefabRegistry {
	return &PrefabRegistry{
		prefabs: make(map[types.AnimalType]*config.PrefabTemplate),
	}
}

// BuildPrefabRegistry 根据生成器配置建立注册表
//
// 参数:
//   - cfg: 生成器配置（决定自动扫描还是手动列表）
//   - resources: 预制体资源所在的文件系统（通常是嵌入的 data 目录）
func BuildPrefabRegistry(cfg *config.SpawnerConfig, resources fs.FS) *PrefabRegistry {
	registry := NewPrefabRegistry()
	if cfg == nil {
		log.Printf("[PrefabRegistry] Warning: spawner config is nil, registry is empty")
		return registry
	}

	if cfg.AutoLoadFromResources {
		registry.LoadFromResources(resources, cfg.PrefabsFolderPath)
	} else {
		registry.LoadFromList(cfg.AnimalPrefabs, resources, cfg.PrefabsFolderPath)
	}

	log.Printf("[PrefabRegistry] Loaded %d animal prefabs", registry.Len())
	return registry
}

// Register 注册模板，已存在同种类模板时忽略并返回 false
func (r *PrefabRegistry) Register(animalType types.AnimalType, template *config.PrefabTemplate) bool {
	if template == nil {
		return false
	}
	if existing, ok := r.prefabs[animalType]; ok {
		log.Printf("[PrefabRegistry] Warning: Prefab for %s already exists (%s), skipping prefab: %s",
			animalType, existing.Name, template.Name)
		return false
	}
	r.prefabs[animalType] = template
	return true
}

// Resolve 查找种类对应的模板
func (r *PrefabRegistry) Resolve(animalType types.AnimalType) (*config.PrefabTemplate, bool) {
	template, ok := r.prefabs[animalType]
	return template, ok
}

// Len 返回已注册的种类数量
func (r *PrefabRegistry) Len() int {
	return len(r.prefabs)
}

// Types 按枚举顺序返回已注册的种类
func (r *PrefabRegistry) Types() []types.AnimalType {
	registered := lo.Keys(r.prefabs)
	sort.Slice(registered, func(i, j int) bool { return registered[i] < registered[j] })
	return registered
}

// Clear 清空注册表
func (r *PrefabRegistry) Clear() {
	r.prefabs = make(map[types.AnimalType]*config.PrefabTemplate)
}

// LoadFromTemplates 按顺序注册一批已发现的模板，种类由 InferAnimalType 推断
// 返回成功注册的数量
func (r *PrefabRegistry) LoadFromTemplates(templates []*config.PrefabTemplate) int {
	loaded := 0
	for _, template := range templates {
		if template == nil {
			continue
		}
		animalType := InferAnimalType(template)
		if r.Register(animalType, template) {
			log.Printf("[PrefabRegistry] Loaded prefab '%s' for %s", template.Name, animalType)
			loaded++
		}
	}
	return loaded
}

// LoadFromResources 扫描资源目录并注册所有模板
func (r *PrefabRegistry) LoadFromResources(resources fs.FS, folder string) int {
	if folder == "" {
		log.Printf("[PrefabRegistry] Warning: prefabs folder path is not set")
		return 0
	}

	templates, err := DiscoverPrefabs(resources, folder)
	if err != nil {
		log.Printf("[PrefabRegistry] Warning: Failed to scan %s: %v", folder, err)
		return 0
	}
	if len(templates) == 0 {
		log.Printf("[PrefabRegistry] Warning: No prefabs found in %s", folder)
		return 0
	}
	return r.LoadFromTemplates(templates)
}

// LoadFromList 按手动配置的列表注册模板
// 列表中的种类以配置为准，不做推断；模板从 folder/<prefab>.yaml 加载
func (r *PrefabRegistry) LoadFromList(entries []config.AnimalPrefabData, resources fs.FS, folder string) int {
	loaded := 0
	for _, entry := range entries {
		template, err := loadPrefab(resources, path.Join(folder, entry.Prefab+".yaml"), entry.Prefab)
		if err != nil {
			log.Printf("[PrefabRegistry] Warning: Failed to load prefab %s for %s: %v", entry.Prefab, entry.AnimalType, err)
			continue
		}
		if r.Register(entry.AnimalType, template) {
			loaded++
		}
	}
	return loaded
}

// InferAnimalType 推断模板的动物种类
//
// 优先级：模板自带的种类标记 > 名称规范化匹配 > 默认种类（输出警告）
func InferAnimalType(template *config.PrefabTemplate) types.AnimalType {
	if template.AnimalType != nil {
		return *template.AnimalType
	}

	if animalType, ok := types.NormalizeAnimalName(template.Name); ok {
		return animalType
	}

	log.Printf("[PrefabRegistry] Warning: Cannot determine animal type for prefab '%s', using %s as default",
		template.Name, types.DefaultAnimalType)
	return types.DefaultAnimalType
}

// DiscoverPrefabs 扫描目录下的所有 .yaml/.yml 模板（按文件名排序）
// 单个模板解析失败时跳过并输出警告
func DiscoverPrefabs(resources fs.FS, folder string) ([]*config.PrefabTemplate, error) {
	if resources == nil {
		return nil, fs.ErrInvalid
	}

	entries, err := fs.ReadDir(resources, folder)
	if err != nil {
		return nil, err
	}

	templates := make([]*config.PrefabTemplate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		template, err := loadPrefab(resources, path.Join(folder, entry.Name()), name)
		if err != nil {
			log.Printf("[PrefabRegistry] Warning: Skipping prefab %s: %v", entry.Name(), err)
			continue
		}
		templates = append(templates, template)
	}
	return templates, nil
}

// loadPrefab 读取并解析单个模板文件
func loadPrefab(resources fs.FS, filePath, defaultName string) (*config.PrefabTemplate, error) {
	if resources == nil {
		return nil, fs.ErrInvalid
	}
	data, err := fs.ReadFile(resources, filePath)
	if err != nil {
		return nil, err
	}
	return config.ParsePrefabTemplate(data, defaultName)
}
