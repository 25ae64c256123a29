package component

// ReloadRequest is a marker component used to signal the game loop to tear
// down and rebuild the current scene. The arena creates a short-lived entity
// with this component when the stage is cleared.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
