package component

import "image/color"

// Label is a screen-space text node. Name is the lookup key used by scene
// builders ("stage", "kills").
type Label struct {
	Name    string
	Text    string
	Visible bool
	X       float64
	Y       float64
	Scale   float64
	Color   color.Color
}

var LabelComponent = NewComponent[Label]()
