package stage

import (
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/session"
)

// Template is a reusable entity descriptor. Instantiating it never mutates it.
type Template interface {
	Path() string
}

// SceneLoader loads templates and instantiates entities from them.
type SceneLoader interface {
	Load(path string) (Template, error)
	Instantiate(t Template) (ecs.Entity, error)
}

// Arena is the live scene graph. It is the sole owner of entity storage and
// destruction; the controller only holds handles.
type Arena interface {
	// Add attaches child under parent. A zero parent means the arena root.
	Add(parent, child ecs.Entity)
	// Remove detaches e from the arena and releases it.
	Remove(e ecs.Entity)
	// QueueFree destroys e at the end of the current frame.
	QueueFree(e ecs.Entity)
	Children(e ecs.Entity) []ecs.Entity
	SetPosition(e ecs.Entity, x, y float64)
	// SetSpeed sets the movement speed of a player entity. It fails when e
	// does not resolve to a player.
	SetSpeed(e ecs.Entity, speed float64) error
	NewCamera(x, y float64) ecs.Entity
	MakeCurrent(camera ecs.Entity)
	ViewportHeight() float64
	// ReloadCurrentScene discards every arena entity and controller and
	// rebuilds the scene from scratch.
	ReloadCurrentScene()
}

// SessionStore yields the session-scoped stage state, if a session exists.
type SessionStore interface {
	Load() (*session.State, bool)
}

// DisplaySink is a label-like presentation node.
type DisplaySink interface {
	SetText(text string)
	SetVisible(visible bool)
	SetPosition(x, y float64)
}

// Animator starts clip playback. Completion is reported back through
// Controller.OnIntroFinished.
type Animator interface {
	Play(clip string, speed float64, reverse, loop bool)
}

// RandomSource supplies uniformly distributed unsigned integers.
type RandomSource interface {
	Uint32() uint32
}
