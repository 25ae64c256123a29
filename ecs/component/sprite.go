package component

import "image/color"

// Sprite is drawn as a filled rectangle centred on the entity's position.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.Color
}

var SpriteComponent = NewComponent[Sprite]()
