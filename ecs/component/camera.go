package component

// Camera centres the view on its world position. Only the camera with Current
// set is used for rendering.
type Camera struct {
	Current bool
	Zoom    float64
}

var CameraComponent = NewComponent[Camera]()
