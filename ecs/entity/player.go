package entity

import (
	"errors"

	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

var ErrNotPlayer = errors.New("entity: not a player")

// SetPlayerSpeed sets the forward speed of a player entity.
func SetPlayerSpeed(w *ecs.World, e ecs.Entity, speed float64) error {
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return ErrNotPlayer
	}
	p.Speed = speed
	return nil
}

// FindPlayer returns the live player entity, if the scene has one.
func FindPlayer(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}
