package component

// Parent links an entity under another entity. Entity holds an ecs.Entity
// (uint64) since this package cannot import ecs.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

// QueueFree marks an entity (and its subtree) for destruction at the end of
// the frame.
type QueueFree struct{}

var QueueFreeComponent = NewComponent[QueueFree]()
