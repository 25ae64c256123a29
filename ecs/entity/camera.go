package entity

import (
	"fmt"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

const cameraPrefab = "camera.yaml"

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera, err := BuildEntity(w, cameraPrefab)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if !ecs.Has(w, camera, component.CameraComponent.Kind()) {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: %s has no camera component", cameraPrefab)
	}
	return camera, nil
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	camera, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}

// MakeCurrent makes camera the only current camera in w.
func MakeCurrent(w *ecs.World, camera ecs.Entity) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		c.Current = e == camera
	})
}

// CurrentCamera returns the camera marked current, if any.
func CurrentCamera(w *ecs.World) (ecs.Entity, bool) {
	var current ecs.Entity
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		if c.Current && !current.Valid() {
			current = e
		}
	})
	return current, current.Valid()
}
