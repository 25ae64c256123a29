package system

import (
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
	"github.com/milk9111/aircombat/stage"
)

// ContactSystem resolves the player ramming enemies: the enemy is destroyed
// and counted as a kill, and the player loses one point of health. The player
// is reported dead once, when health first reaches zero.
type ContactSystem struct {
	sessions stage.SessionStore
}

func NewContactSystem(sessions stage.SessionStore) *ContactSystem {
	return &ContactSystem{sessions: sessions}
}

func (cs *ContactSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	hit := make(map[ecs.Entity]bool)
	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventCollisionEntered {
			continue
		}
		c, ok := evt.Data.(ecs.CollisionEvent)
		if !ok || hit[c.Other] {
			continue
		}
		if !ecs.Has(w, c.Other, component.EnemyTagComponent.Kind()) {
			continue
		}
		if ecs.Has(w, c.Other, component.QueueFreeComponent.Kind()) {
			continue
		}
		player, ok := ecs.Get(w, c.Entity, component.PlayerComponent.Kind())
		if !ok || player.Health <= 0 {
			continue
		}

		hit[c.Other] = true
		ecs.QueueFree(w, c.Other)
		if state, ok := cs.sessions.Load(); ok {
			state.RecordKill()
		}
		w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Data: c.Other})

		player.Health--
		if player.Health == 0 {
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Data: ecs.PlayerDiedEvent{Entity: c.Entity}})
		}
	}
}
