package system

import (
	"math"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

// CameraSystem resolves the view rectangle from the current camera. The camera
// sits at the centre of the view; vertically the view never leaves the arena,
// which is exactly one viewport tall.
type CameraSystem struct {
	viewX float64
	viewY float64
	zoom  float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{zoom: 1}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	viewW, viewH := w.Viewport()

	var cam ecs.Entity
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		if c.Current && !cam.Valid() {
			cam = e
		}
	})
	if !cam.Valid() {
		return
	}

	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	x, y, ok := ecs.WorldPosition(w, cam)
	if !ok {
		return
	}

	halfW := viewW / (2 * zoom)
	halfH := viewH / (2 * zoom)
	cs.viewX = x - halfW
	cs.viewY = math.Max(0, math.Min(viewH-2*halfH, y-halfH))
	cs.zoom = zoom
}

// View returns the top-left world position of the screen and the zoom.
func (cs *CameraSystem) View() (float64, float64, float64) {
	if cs == nil {
		return 0, 0, 1
	}
	return cs.viewX, cs.viewY, cs.zoom
}
