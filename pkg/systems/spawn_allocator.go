package systems

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"
)

// SpawnAllocator 生成点分配器
//
// 管理一组固定数量的生成点（按编号 0..count-1），保证同一轮生成中
// 每个生成点最多被占用一次。每次分配都从剩余的空闲生成点中均匀随机选取，
// 整轮分配等价于一次无放回的均匀随机排列。
type SpawnAllocator struct {
	count int
	used  map[int]struct{}
	rng   *rand.Rand
}

// NewSpawnAllocator 创建分配器
//
// 参数:
//   - count: 生成点数量（小于 0 按 0 处理）
//   - rng: 随机数源，为 nil 时使用固定种子 1
func NewSpawnAllocator(count int, rng *rand.Rand) *SpawnAllocator {
	if count < 0 {
		count = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SpawnAllocator{
		count: count,
		used:  make(map[int]struct{}, count),
		rng:   rng,
	}
}

// Count 返回生成点总数
func (a *SpawnAllocator) Count() int {
	return a.count
}

// UsedCount 返回已占用的生成点数量
func (a *SpawnAllocator) UsedCount() int {
	return len(a.used)
}

// FreeCount 返回空闲生成点数量
func (a *SpawnAllocator) FreeCount() int {
	return a.count - len(a.used)
}

// IsUsed 检查生成点是否已被占用
func (a *SpawnAllocator) IsUsed(index int) bool {
	_, ok := a.used[index]
	return ok
}

// AllocateRandom 从空闲生成点中均匀随机选取一个并标记为占用
//
// 返回:
//   - 生成点编号
//   - false 表示已没有空闲生成点
func (a *SpawnAllocator) AllocateRandom() (int, bool) {
	free := a.FreeIndices()
	if len(free) == 0 {
		return -1, false
	}
	index := free[a.rng.Intn(len(free))]
	a.used[index] = struct{}{}
	return index, true
}

// Claim 直接占用指定生成点（随机补位阶段使用）
// 编号越界或已被占用时返回 false
func (a *SpawnAllocator) Claim(index int) bool {
	if index < 0 || index >= a.count || a.IsUsed(index) {
		return false
	}
	a.used[index] = struct{}{}
	return true
}

// FreeIndices 按编号升序返回所有空闲生成点
func (a *SpawnAllocator) FreeIndices() []int {
	return lo.Filter(lo.Range(a.count), func(index, _ int) bool {
		return !a.IsUsed(index)
	})
}

// UsedIndices 按编号升序返回所有已占用生成点
func (a *SpawnAllocator) UsedIndices() []int {
	used := lo.Keys(a.used)
	sort.Ints(used)
	return used
}

// Reset 释放所有生成点
func (a *SpawnAllocator) Reset() {
	a.used = make(map[int]struct{}, a.count)
}
