package component

// Player holds the tunables of the player's aircraft. Speed is in pixels per
// tick along +X; zero freezes movement.
type Player struct {
	Speed  float64
	Health int
}

var PlayerComponent = NewComponent[Player]()
