package component

// Transform is the position of an entity relative to its parent, or to the
// arena origin when it has none.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
