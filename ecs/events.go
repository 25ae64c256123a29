package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventCollisionEntered carries a CollisionEvent.
	EventCollisionEntered = "collision_entered"
	// EventAnimationFinished carries an AnimationFinishedEvent.
	EventAnimationFinished = "animation_finished"
	// EventPlayerDied carries a PlayerDiedEvent.
	EventPlayerDied = "player_died"
	// EventEnemyKilled carries the killed enemy Entity.
	EventEnemyKilled = "enemy_killed"
)

// CollisionEvent is emitted when a tracked collider enters another shape.
// Layers is the collision-layer bitmask of the shape that was entered.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Layers uint32
}

// AnimationFinishedEvent is emitted when a non-looping clip reaches its end.
type AnimationFinishedEvent struct {
	Entity Entity
	Clip   string
}

// PlayerDiedEvent is emitted by the player's own death logic.
type PlayerDiedEvent struct {
	Entity Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the events pushed so far this frame without consuming them,
// so every system later in the frame sees the same events.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
