package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/farmrescue/pkg/components"
	"github.com/decker502/farmrescue/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	grassColor     = color.RGBA{R: 118, G: 178, B: 82, A: 255}
	fenceColor     = color.RGBA{R: 139, G: 94, B: 60, A: 255}
	effectColor    = color.RGBA{R: 255, G: 250, B: 180, A: 255}
	deliveredColor = color.RGBA{R: 255, G: 255, B: 255, A: 120}
)

// 绘制层级：地面标记 < 动物/玩家 < 方块 < 背着的动物
const (
	layerGround = iota
	layerActor
	layerBlock
	layerCarried
)

// ViewLayout 俯视图布局（世界坐标为米，XZ 平面）
type ViewLayout struct {
	PixelsPerMeter float64
	OffsetY        float64 // 场地上方留给 HUD 的高度（像素）
	FieldWidth     float64 // 场地宽度（米）
	FieldDepth     float64 // 场地深度（米）
}

// WorldToScreen 把地面坐标转换为屏幕坐标
func (v ViewLayout) WorldToScreen(x, z float64) (float32, float32) {
	return float32(x * v.PixelsPerMeter), float32(v.OffsetY + z*v.PixelsPerMeter)
}

// RenderSystem 绘制场地、所有带外观的实体和特效
type RenderSystem struct {
	entityManager *ecs.EntityManager
	layout        ViewLayout
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, layout ViewLayout) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		layout:        layout,
	}
}

// Layout 返回视图布局
func (s *RenderSystem) Layout() ViewLayout {
	return s.layout
}

// Draw 按层级绘制整个场地
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawField(screen)
	for _, id := range s.DrawOrder() {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		s.drawShape(screen, id, shape, transform)
	}
	s.drawEffects(screen)
}

// DrawOrder 返回需要绘制的实体（已隐藏的跳过），按层级排序，同层保持 ID 顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	em := s.entityManager
	ids := ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TransformComponent](em)

	visible := ids[:0]
	for _, id := range ids {
		if visibility, ok := ecs.GetComponent[*components.VisibilityComponent](em, id); ok && !visibility.Active {
			continue
		}
		visible = append(visible, id)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return s.drawLayer(visible[i]) < s.drawLayer(visible[j])
	})
	return visible
}

func (s *RenderSystem) drawLayer(id ecs.EntityID) int {
	if item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, id); ok && item.PickedUp {
		return layerCarried
	}
	shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
	switch shape.Kind {
	case components.ShapeRing:
		return layerGround
	case components.ShapeSquare:
		return layerBlock
	default:
		return layerActor
	}
}

// drawField 草地和围栏
func (s *RenderSystem) drawField(screen *ebiten.Image) {
	screen.Fill(grassColor)
	w := float32(s.layout.FieldWidth * s.layout.PixelsPerMeter)
	h := float32(s.layout.FieldDepth * s.layout.PixelsPerMeter)
	vector.StrokeRect(screen, 2, float32(s.layout.OffsetY)+2, w-4, h-4, 4, fenceColor, false)
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, id ecs.EntityID, shape *components.ShapeComponent, transform *components.TransformComponent) {
	cx, cy := s.layout.WorldToScreen(transform.X, transform.Z)
	r := float32(shape.Radius * s.layout.PixelsPerMeter)
	clr := color.RGBA{R: shape.R, G: shape.G, B: shape.B, A: 255}

	// 背起的动物画在玩家头顶
	if transform.HasParent() {
		cy -= float32(transform.Y * s.layout.PixelsPerMeter * 0.5)
	}

	switch shape.Kind {
	case components.ShapeRing:
		vector.StrokeCircle(screen, cx, cy, r, 3, clr, true)
	case components.ShapeSquare:
		vector.DrawFilledRect(screen, cx-r, cy-r, 2*r, 2*r, clr, false)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
		if item, ok := ecs.GetComponent[*components.AnimalItemComponent](s.entityManager, id); ok && item.Collected {
			vector.StrokeCircle(screen, cx, cy, r+2, 2, deliveredColor, true)
		}
	}

	if shape.Label != "" {
		ebitenutil.DebugPrintAt(screen, shape.Label, int(cx-r), int(cy-r)-16)
	}
}

// EffectRadius 特效当前半径（米），随生命周期从 0 扩散到 MaxRadius
func EffectRadius(effect *components.EffectComponent, lifetime *components.LifetimeComponent) float64 {
	progress := 1.0
	if lifetime != nil && lifetime.MaxLifetime > 0 {
		progress = min(lifetime.CurrentLifetime/lifetime.MaxLifetime, 1)
	}
	return effect.MaxRadius * progress
}

// drawEffects 特效绘制为扩散的圆环
func (s *RenderSystem) drawEffects(screen *ebiten.Image) {
	em := s.entityManager
	for _, id := range ecs.GetEntitiesWith2[*components.EffectComponent, *components.TransformComponent](em) {
		effect, _ := ecs.GetComponent[*components.EffectComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)

		r := float32(EffectRadius(effect, lifetime) * s.layout.PixelsPerMeter)
		if r <= 0 {
			continue
		}
		cx, cy := s.layout.WorldToScreen(transform.X, transform.Z)
		vector.StrokeCircle(screen, cx, cy, r, 2, effectColor, true)
	}
}
