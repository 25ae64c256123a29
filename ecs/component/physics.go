package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are nil until the physics system registers the entity.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
	Sensor bool
	Static bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
