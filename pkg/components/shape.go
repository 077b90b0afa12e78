package components

// ShapeKind 调试渲染使用的图形类型
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
	ShapeRing
)

// ShapeComponent 实体的俯视图外观（纯色图形）
type ShapeComponent struct {
	Kind    ShapeKind
	Radius  float64 // 世界单位
	R, G, B uint8
	Label   string // 显示在图形上方的文字（可为空）
}
