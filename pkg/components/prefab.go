package components

// PrefabInstanceComponent 记录实体是由哪个预制体实例化的
type PrefabInstanceComponent struct {
	PrefabName string
	SpawnPoint int  // 占用的生成点编号
	FromQuest  bool // true 表示由任务目标生成，false 表示随机补位
}
