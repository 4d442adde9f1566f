package component

// Transform places an entity in world space. +Y points up and the world origin
// is the centre of the screen.
type Transform struct {
	X      float64
	Y      float64
	Z      float64
	ScaleX float64
	ScaleY float64
	ScaleZ float64
}

// NewTransform returns a transform at x, y, z with unit scale.
func NewTransform(x, y, z float64) *Transform {
	return &Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1, ScaleZ: 1}
}

var TransformComponent = NewComponent[Transform]()
