package ecs

import "github.com/milk9111/aircombat/ecs/component"

// maxDepth bounds parent-chain walks so a corrupted hierarchy cannot hang a
// frame.
const maxDepth = 64

// SetParent attaches child under parent. A zero parent detaches child back to
// the arena root.
func SetParent(w *World, child, parent Entity) error {
	if !IsAlive(w, child) {
		return component.ErrEntityNotAlive
	}
	if !parent.Valid() {
		Remove(w, child, component.ParentComponent.Kind())
		return nil
	}
	if !IsAlive(w, parent) {
		return component.ErrEntityNotAlive
	}
	return Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(parent)})
}

// ParentOf returns the live parent of e, if any.
func ParentOf(w *World, e Entity) (Entity, bool) {
	p, ok := Get(w, e, component.ParentComponent.Kind())
	if !ok {
		return 0, false
	}
	parent := Entity(p.Entity)
	if !IsAlive(w, parent) {
		return 0, false
	}
	return parent, true
}

// Children returns the direct children of parent.
func Children(w *World, parent Entity) []Entity {
	if !IsAlive(w, parent) {
		return nil
	}
	var out []Entity
	ForEach(w, component.ParentComponent.Kind(), func(e Entity, p *component.Parent) {
		if Entity(p.Entity) == parent {
			out = append(out, e)
		}
	})
	return out
}

// QueueFree marks e for destruction at the end of the current frame.
func QueueFree(w *World, e Entity) {
	_ = Add(w, e, component.QueueFreeComponent.Kind(), &component.QueueFree{})
}

// DestroyTree destroys e and every descendant of e.
func DestroyTree(w *World, e Entity) {
	destroyTree(w, e, 0)
}

func destroyTree(w *World, e Entity, depth int) {
	if !IsAlive(w, e) || depth > maxDepth {
		return
	}
	for _, child := range Children(w, e) {
		destroyTree(w, child, depth+1)
	}
	DestroyEntity(w, e)
}

// WorldPosition resolves the absolute position of e by summing the transforms
// along its parent chain.
func WorldPosition(w *World, e Entity) (float64, float64, bool) {
	t, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	x, y := t.X, t.Y
	cur := e
	for depth := 0; depth < maxDepth; depth++ {
		parent, ok := ParentOf(w, cur)
		if !ok {
			break
		}
		if pt, ok := Get(w, parent, component.TransformComponent.Kind()); ok {
			x += pt.X
			y += pt.Y
		}
		cur = parent
	}
	return x, y, true
}

func flushFreed(w *World) {
	for _, e := range Query(w, component.QueueFreeComponent.Kind().ID()) {
		DestroyTree(w, e)
	}
}
