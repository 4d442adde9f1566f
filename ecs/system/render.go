package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mover/ecs"
	"github.com/milk9111/mover/ecs/component"
)

// RenderSystem draws sprites as filled rectangles centred on their transform.
// World +Y is up; the camera transform sits at the centre of the screen.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !ecs.IsAlive(w, r.camEntity) {
		r.camEntity = 0
		if camEntity, ok := w.First(component.CameraTagComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && camComp.Zoom > 0 {
		zoom = camComp.Zoom
	}

	bounds := screen.Bounds()
	originX := float64(bounds.Dx()) / 2
	originY := float64(bounds.Dy()) / 2

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := renderLayer(w, entities[i])
		lj := renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		rx, ry, rw, rh := spriteRect(t, s, camX, camY, zoom)
		clr := s.Color
		if clr == nil {
			clr = color.White
		}
		vector.DrawFilledRect(screen,
			float32(originX+rx), float32(originY+ry),
			float32(rw), float32(rh),
			clr, false)
	}
}

// spriteRect returns the sprite's top-left corner relative to the screen
// centre plus its size, all in screen pixels.
func spriteRect(t *component.Transform, s *component.Sprite, camX, camY, zoom float64) (x, y, width, height float64) {
	// a negative scale mirrors the sprite; a solid rectangle looks the same
	width = spriteExtent(s.Width) * math.Abs(t.ScaleX) * zoom
	height = spriteExtent(s.Height) * math.Abs(t.ScaleY) * zoom
	cx := (t.X - camX) * zoom
	cy := -(t.Y - camY) * zoom
	return cx - width/2, cy - height/2, width, height
}

func spriteExtent(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
