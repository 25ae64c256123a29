package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/aircombat/ecs"
	"github.com/milk9111/aircombat/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

// PhysicsSystem mirrors physics bodies into a Chipmunk space, steps it once
// per frame and reports every shape the player starts touching as an
// EventCollisionEntered carrying the touched shape's collision category.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	layers   map[*cp.Shape]uint32

	pending []ecs.CollisionEvent
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	root   bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		layers:   make(map[*cp.Shape]uint32),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.pending = ps.pending[:0]
	ps.space.Step(1.0)

	ps.syncTransforms(w)
	for _, evt := range ps.pending {
		w.Events().Push(ecs.Event{Type: ecs.EventCollisionEntered, Data: evt})
	}
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeSolid)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		player, okA := sys.shapes[shapeA]
		other, okB := sys.shapes[shapeB]
		if !okA || !okB {
			return true
		}
		sys.pending = append(sys.pending, ecs.CollisionEvent{
			Entity: player,
			Other:  other,
			Layers: sys.layers[shapeB],
		})
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	for _, e := range ecs.Query(w, component.PhysicsBodyComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil || bodyComp.Shape == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
			}
			continue
		}

		x, y, _ := ecs.WorldPosition(w, e)
		layer := component.CollisionLayer{Category: 1, Mask: ^uint32(0)}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			layer = *l
		}
		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		_, hasParent := ecs.ParentOf(w, e)

		info := ps.createBodyInfo(x, y, bodyComp, layer, isPlayer)
		info.root = !hasParent
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		ps.layers[info.shape] = layer.Category

		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	}
}

func (ps *PhysicsSystem) createBodyInfo(x, y float64, bodyComp *component.PhysicsBody, layer component.CollisionLayer, isPlayer bool) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Category), uint(layer.Mask))
	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	var body *cp.Body
	if isPlayer {
		body = cp.NewBody(1, cp.INFINITY)
	} else {
		body = cp.NewKinematicBody()
	}
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetFilter(filter)
	if isPlayer {
		shape.SetCollisionType(collisionTypePlayer)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

// syncTransforms copies simulated positions back for root entities; children
// follow their parent through the hierarchy instead.
func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || !info.root {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.X = pos.X
		t.Y = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
			delete(ps.layers, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
