package entity

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

// Arena exposes a world as the scene the stage controller plays in.
type Arena struct {
	w *ecs.World
}

func NewArena(w *ecs.World) *Arena {
	return &Arena{w: w}
}

// Add places child under parent; a zero parent puts child at the scene root.
func (a *Arena) Add(parent, child ecs.Entity) {
	if err := ecs.SetParent(a.w, child, parent); err != nil {
		log.Printf("arena: add %v under %v: %v", child, parent, err)
	}
}

// Remove takes e out of the scene. Nothing else owns a removed entity, so it
// is destroyed; its children are left to QueueFree.
func (a *Arena) Remove(e ecs.Entity) {
	ecs.DestroyEntity(a.w, e)
}

func (a *Arena) QueueFree(e ecs.Entity) {
	ecs.QueueFree(a.w, e)
}

func (a *Arena) Children(e ecs.Entity) []ecs.Entity {
	return ecs.Children(a.w, e)
}

// SetPosition moves e, including its physics body when it already has one.
func (a *Arena) SetPosition(e ecs.Entity, x, y float64) {
	if err := SetEntityTransform(a.w, e, x, y); err != nil {
		log.Printf("arena: position %v: %v", e, err)
		return
	}
	if pb, ok := ecs.Get(a.w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil && !pb.Static {
		wx, wy, _ := ecs.WorldPosition(a.w, e)
		pb.Body.SetPosition(cp.Vector{X: wx, Y: wy})
	}
}

func (a *Arena) SetSpeed(e ecs.Entity, speed float64) error {
	return SetPlayerSpeed(a.w, e, speed)
}

// NewCamera creates a camera at the given local offset. A broken camera prefab
// falls back to a bare camera so the stage can still start.
func (a *Arena) NewCamera(x, y float64) ecs.Entity {
	cam, err := NewCameraAt(a.w, x, y)
	if err == nil {
		return cam
	}
	log.Printf("arena: %v; using default camera", err)
	cam, err = newDefaultCamera(a.w, x, y)
	if err != nil {
		log.Printf("arena: default camera: %v", err)
	}
	return cam
}

// newDefaultCamera builds a camera without the prefab. On failure nothing is
// left in the world.
func newDefaultCamera(w *ecs.World, x, y float64) (ecs.Entity, error) {
	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}); err != nil {
		ecs.DestroyEntity(w, cam)
		return 0, err
	}
	if err := ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		ecs.DestroyEntity(w, cam)
		return 0, err
	}
	return cam, nil
}

func (a *Arena) MakeCurrent(camera ecs.Entity) {
	MakeCurrent(a.w, camera)
}

func (a *Arena) ViewportHeight() float64 {
	_, h := a.w.Viewport()
	return h
}

// ReloadCurrentScene leaves a ReloadRequest for the game loop. Repeated calls
// in one scene share the same request.
func (a *Arena) ReloadCurrentScene() {
	if _, ok := ecs.First(a.w, component.ReloadRequestComponent.Kind()); ok {
		return
	}
	e := ecs.CreateEntity(a.w)
	_ = ecs.Add(a.w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
}

// ReloadRequested reports whether a scene reload is pending in w.
func ReloadRequested(w *ecs.World) bool {
	_, ok := ecs.First(w, component.ReloadRequestComponent.Kind())
	return ok
}
