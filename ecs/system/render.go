package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
	"golang.org/x/image/font/basicfont"
)

type RenderSystem struct {
	camera *CameraSystem
	face   ebtext.Face
}

func NewRenderSystem(camera *CameraSystem) *RenderSystem {
	return &RenderSystem{
		camera: camera,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw paints sprites in world space, ordered by render layer, then labels in
// screen space on top.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := r.camera.View()

	entities := ecs.Query(w, component.TransformComponent.Kind().ID(), component.SpriteComponent.Kind().ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		x, y, ok := ecs.WorldPosition(w, e)
		if !ok {
			continue
		}
		sx := (x - s.Width/2 - camX) * zoom
		sy := (y - s.Height/2 - camY) * zoom
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(s.Width*zoom), float32(s.Height*zoom), s.Color, false)
	}

	ecs.ForEach(w, component.LabelComponent.Kind(), func(e ecs.Entity, l *component.Label) {
		if !l.Visible || l.Text == "" {
			return
		}
		scale := l.Scale
		if scale <= 0 {
			scale = 1
		}
		op := &ebtext.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(l.X, l.Y)
		clr := l.Color
		if clr == nil {
			clr = color.White
		}
		op.ColorScale.ScaleWithColor(clr)
		ebtext.Draw(screen, l.Text, r.face, op)
	})
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
