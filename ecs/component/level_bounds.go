package component

type LevelBounds struct {
	Name   string
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
