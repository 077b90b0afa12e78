package components

// SpawnPointComponent 标记实体为动物生成点
// Index 是生成点在关卡中的顺序编号，生成点在整个关卡中保持不变
type SpawnPointComponent struct {
	Index int
}
