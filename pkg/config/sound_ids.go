package config

// 内置音效ID
// 预制体和检查点配置里的音效字段也使用这些ID
const (
	SoundAnimalCollect = "animal_collect"
	SoundAnimalDrop    = "animal_drop"
	SoundWin           = "win"
	SoundLose          = "lose"
	SoundHurt          = "hurt"
)
