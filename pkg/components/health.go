package components

// HealthComponent 存储实体的生命值信息
type HealthComponent struct {
	CurrentHealth int  // 当前生命值
	MaxHealth     int  // 最大生命值
	IsDead        bool // 是否已死亡（死亡后不再受伤）
}
