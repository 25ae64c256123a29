package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

// PlayerMovementSystem flies the player forward at its speed and steers it
// vertically from input. A player with zero speed is frozen in place.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, viewH := w.Viewport()

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		moveY := 0.0
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			moveY = math.Max(-1, math.Min(1, in.MoveY))
		}
		vx := p.Speed
		vy := moveY * p.Speed

		halfH := 0.0
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			halfH = pb.Height / 2
			if pb.Body != nil {
				// Hold the body inside the arena vertically; physics integrates
				// the velocity and writes the transform back.
				y := pb.Body.Position().Y
				if viewH > 0 && ((y-halfH <= 0 && vy < 0) || (y+halfH >= viewH && vy > 0)) {
					vy = 0
				}
				pb.Body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
				return
			}
		}

		t.X += vx
		t.Y += vy
		if viewH > 0 {
			t.Y = math.Max(halfH, math.Min(viewH-halfH, t.Y))
		}
	})
}
