package systems

import (
	"math/rand"
	"testing"
)

// TestSpawnAllocatorUniqueness 每个生成点只能被分配一次
func TestSpawnAllocatorUniqueness(t *testing.T) {
	allocator := NewSpawnAllocator(10, rand.New(rand.NewSource(7)))

	seen := make(map[int]bool)
	for i := 0; i < 10; i++ {
		index, ok := allocator.AllocateRandom()
		if !ok {
			t.Fatalf("allocation %d failed with %d free points", i, allocator.FreeCount())
		}
		if index < 0 || index >= 10 {
			t.Fatalf("index %d out of range", index)
		}
		if seen[index] {
			t.Fatalf("index %d allocated twice", index)
		}
		seen[index] = true
	}

	if _, ok := allocator.AllocateRandom(); ok {
		t.Error("allocation should fail when all points are used")
	}
	if allocator.FreeCount() != 0 || allocator.UsedCount() != 10 {
		t.Errorf("free=%d used=%d, want 0/10", allocator.FreeCount(), allocator.UsedCount())
	}
}

// TestSpawnAllocatorReset 重置后所有生成点重新可用
func TestSpawnAllocatorReset(t *testing.T) {
	allocator := NewSpawnAllocator(3, nil)
	for i := 0; i < 3; i++ {
		allocator.AllocateRandom()
	}

	allocator.Reset()
	if allocator.FreeCount() != 3 {
		t.Errorf("FreeCount() after reset = %d, want 3", allocator.FreeCount())
	}
	if len(allocator.UsedIndices()) != 0 {
		t.Errorf("UsedIndices() after reset = %v, want empty", allocator.UsedIndices())
	}

	// 重复重置无副作用
	allocator.Reset()
	if allocator.Count() != 3 {
		t.Errorf("Count() = %d, want 3", allocator.Count())
	}
}

// TestSpawnAllocatorEmpty 没有生成点时分配失败
func TestSpawnAllocatorEmpty(t *testing.T) {
	for _, count := range []int{0, -5} {
		allocator := NewSpawnAllocator(count, nil)
		if _, ok := allocator.AllocateRandom(); ok {
			t.Errorf("count=%d: allocation should fail", count)
		}
		if allocator.Count() != 0 {
			t.Errorf("count=%d: Count() = %d, want 0", count, allocator.Count())
		}
	}
}

// TestSpawnAllocatorClaim 测试直接占用
func TestSpawnAllocatorClaim(t *testing.T) {
	allocator := NewSpawnAllocator(4, nil)

	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{name: "空闲生成点", index: 2, want: true},
		{name: "重复占用", index: 2, want: false},
		{name: "负数编号", index: -1, want: false},
		{name: "越界编号", index: 4, want: false},
		{name: "另一个空闲生成点", index: 0, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allocator.Claim(tt.index); got != tt.want {
				t.Errorf("Claim(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}

	free := allocator.FreeIndices()
	if len(free) != 2 || free[0] != 1 || free[1] != 3 {
		t.Errorf("FreeIndices() = %v, want [1 3]", free)
	}
	used := allocator.UsedIndices()
	if len(used) != 2 || used[0] != 0 || used[1] != 2 {
		t.Errorf("UsedIndices() = %v, want [0 2]", used)
	}

	// 随机分配不会选中已占用的生成点
	for i := 0; i < 2; i++ {
		index, ok := allocator.AllocateRandom()
		if !ok || (index != 1 && index != 3) {
			t.Errorf("AllocateRandom() = (%d, %v), want 1 or 3", index, ok)
		}
	}
}

// TestSpawnAllocatorDistribution 首次分配在所有生成点上大致均匀
func TestSpawnAllocatorDistribution(t *testing.T) {
	const points = 5
	const rounds = 5000
	rng := rand.New(rand.NewSource(99))
	counts := make([]int, points)

	allocator := NewSpawnAllocator(points, rng)
	for i := 0; i < rounds; i++ {
		allocator.Reset()
		index, _ := allocator.AllocateRandom()
		counts[index]++
	}

	expected := rounds / points
	for index, count := range counts {
		if count < expected*8/10 || count > expected*12/10 {
			t.Errorf("spawn point %d picked %d times, expected about %d", index, count, expected)
		}
	}
}

// TestSpawnAllocatorDeterministic 相同种子产生相同序列
func TestSpawnAllocatorDeterministic(t *testing.T) {
	sequence := func() []int {
		allocator := NewSpawnAllocator(8, rand.New(rand.NewSource(123)))
		result := make([]int, 0, 8)
		for {
			index, ok := allocator.AllocateRandom()
			if !ok {
				return result
			}
			result = append(result, index)
		}
	}

	a, b := sequence(), sequence()
	if len(a) != 8 || len(b) != 8 {
		t.Fatalf("sequence lengths %d/%d, want 8", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequences differ at %d: %v vs %v", i, a, b)
		}
	}
}
