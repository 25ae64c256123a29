package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation plays named clips. Frame advances by Speed per frame step and
// runs backwards when Reverse is set.
type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Speed      float64
	Reverse    bool
	Loop       bool
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
