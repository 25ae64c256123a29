package component

// Input is the per-frame control state of the player. MoveY is in [-1, 1],
// negative meaning up.
type Input struct {
	MoveY float64
}

var InputComponent = NewComponent[Input]()
