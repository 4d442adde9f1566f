package component

import "image/color"

// Sprite is drawn as a solid rectangle. Width and Height are multiplied by the
// transform scale, so a 1x1 sprite takes the size of its scale.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
