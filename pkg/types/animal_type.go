// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"strings"

	"github.com/samber/lo"
)

// AnimalType 定义动物的种类
//
// 枚举顺序是有意义的：关卡限制（AllowedAnimalTypesForLevel）按索引区间筛选，
// 新增种类只能追加在末尾。
type AnimalType int

const (
	// 常见动物（索引 0-9，第 2-10 关可出现）
	AnimalBear    AnimalType = iota // 熊
	AnimalCat                       // 猫
	AnimalChicken                   // 鸡
	AnimalCow                       // 奶牛
	AnimalDeer                      // 鹿
	AnimalDog                       // 狗
	AnimalGoat                      // 山羊
	AnimalPig                       // 猪
	AnimalSheep                     // 绵羊
	AnimalDuck                      // 鸭子

	// 稀有动物（第 11 关起）
	AnimalElephant // 大象
	AnimalFox      // 狐狸
	AnimalGiraffe  // 长颈鹿
	AnimalHorse    // 马
	AnimalLion     // 狮子
	AnimalMonkey   // 猴子
	AnimalPanda    // 熊猫
	AnimalPenguin  // 企鹅
	AnimalRabbit   // 兔子
	AnimalTiger    // 老虎
	AnimalZebra    // 斑马
)

// DefaultAnimalType 无法推断种类时使用的默认值
const DefaultAnimalType = AnimalCow

// animalTypeNames 按枚举顺序排列的名称
var animalTypeNames = []string{
	"Bear",
	"Cat",
	"Chicken",
	"Cow",
	"Deer",
	"Dog",
	"Goat",
	"Pig",
	"Sheep",
	"Duck",
	"Elephant",
	"Fox",
	"Giraffe",
	"Horse",
	"Lion",
	"Monkey",
	"Panda",
	"Penguin",
	"Rabbit",
	"Tiger",
	"Zebra",
}

// 关卡限制常量
const (
	// CommonAnimalMaxIndex 第 2-10 关允许的最大枚举索引（含）
	CommonAnimalMaxIndex = 9
	// UnrestrictedLevel 超过此关卡后不再限制种类
	UnrestrictedLevel = 10
)

// firstLevelAnimals 第一关只出现的简单动物，与枚举顺序无关
var firstLevelAnimals = []AnimalType{AnimalCow, AnimalChicken, AnimalPig, AnimalSheep}

// String 返回动物种类的名称（与配置文件、预制体名称匹配）
func (a AnimalType) String() string {
	if a.IsValid() {
		return animalTypeNames[a]
	}
	return "Unknown"
}

// IsValid 判断是否为已定义的种类
func (a AnimalType) IsValid() bool {
	return a >= 0 && int(a) < len(animalTypeNames)
}

// MarshalYAML 以名称形式写入配置
func (a AnimalType) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML 从配置名称解析种类，名称规则与 NormalizeAnimalName 相同
func (a *AnimalType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, ok := NormalizeAnimalName(name)
	if !ok {
		return &UnknownAnimalError{Name: name}
	}
	*a = parsed
	return nil
}

// UnknownAnimalError 表示配置中出现了无法识别的动物名称
type UnknownAnimalError struct {
	Name string
}

func (e *UnknownAnimalError) Error() string {
	return "unknown animal type: " + e.Name
}

// AllAnimalTypes 按枚举顺序返回全部种类
func AllAnimalTypes() []AnimalType {
	return lo.Map(animalTypeNames, func(_ string, i int) AnimalType {
		return AnimalType(i)
	})
}

// NormalizeAnimalName 将预制体名称规范化后匹配动物种类
//
// 规则：去掉 '_' 和 '-'，去掉首尾空白，不区分大小写与枚举名称比较。
// 例如 "sheep"、"Sheep_"、"c-o-w" 都能匹配；"Cow_01" 不能匹配。
func NormalizeAnimalName(name string) (AnimalType, bool) {
	normalized := strings.NewReplacer("_", "", "-", "").Replace(name)
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return DefaultAnimalType, false
	}

	_, index, ok := lo.FindIndexOf(animalTypeNames, func(candidate string) bool {
		return strings.EqualFold(normalized, candidate)
	})
	if !ok {
		return DefaultAnimalType, false
	}
	return AnimalType(index), true
}

// AllowedAnimalTypesForLevel 返回指定关卡随机补位时允许出现的种类
//
//   - 第 1 关：固定为 奶牛、鸡、猪、绵羊
//   - 第 2-10 关：枚举索引 [0, 9]（受枚举长度限制）
//   - 第 11 关起：全部种类
//
// 小于 1 的关卡按 2-10 关规则处理。
func AllowedAnimalTypesForLevel(level int) []AnimalType {
	if level == 1 {
		allowed := make([]AnimalType, len(firstLevelAnimals))
		copy(allowed, firstLevelAnimals)
		return allowed
	}

	all := AllAnimalTypes()
	if level <= UnrestrictedLevel {
		maxIndex := CommonAnimalMaxIndex
		if maxIndex >= len(all) {
			maxIndex = len(all) - 1
		}
		return all[:maxIndex+1]
	}
	return all
}
