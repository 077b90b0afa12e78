package components

// VisibilityComponent 控制实体是否处于激活（可见）状态
type VisibilityComponent struct {
	Active bool
}
