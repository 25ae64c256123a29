package component

// RenderLayer is used to sort draw order deterministically. Higher indices
// draw on top.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
