// validate_assets 检查 assets/ 下的关卡和预制体配置
//
// 用法：
//
//	go run ./cmd/validate_assets [项目根目录]
package main

import (
	"fmt"
	"os"

	"github.com/decker502/farmrescue/pkg/game"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	rm := game.NewResourceManager(os.DirFS(root))
	if err := rm.LoadAll(); err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 关卡数量: %d\n", rm.LevelCount())
	fmt.Printf("✅ 预制体数量: %d\n", rm.GetPrefabRegistry().Len())
	for _, animalType := range rm.GetPrefabRegistry().Types() {
		template, _ := rm.GetPrefabRegistry().Resolve(animalType)
		fmt.Printf("   %-10s -> %s\n", animalType, template.Name)
	}

	issues := rm.ValidateLevels()
	if len(issues) == 0 {
		fmt.Printf("✅ 所有关卡配置有效\n")
		return
	}
	for _, issue := range issues {
		fmt.Printf("❌ %s\n", issue)
	}
	os.Exit(1)
}
