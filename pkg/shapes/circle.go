package shapes

import (
	"math"

	"github.com/arthur-debert/factory/pkg/registry"
)

// CircleID identifies the circle productions
const CircleID = "circle"

var (
	_ = registry.AddProduction[Shape, Circle]()
	_ = registry.AddWith[Shape](CircleID, NewCircleWithRadius)
)

// NewCircleWithRadius builds a circle of the given radius
func NewCircleWithRadius(radius float64) Shape { return &Circle{Radius: radius} }

// Circle is produced with a unit radius
type Circle struct {
	Radius float64
}

func (Circle) ProductionID() string { return CircleID }
func (Circle) Produce() Shape       { return &Circle{Radius: 1} }

func (c *Circle) Name() string       { return CircleID }
func (c *Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }
