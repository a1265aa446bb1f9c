package shapes

import "github.com/arthur-debert/factory/pkg/registry"

// RectangleID identifies the rectangle production
const RectangleID = "rectangle"

var _ = registry.AddProductionWith[Shape, Dimensions, Rectangle]()

// Dimensions are the construction arguments of sized shapes
type Dimensions struct {
	Width  float64
	Height float64
}

// Rectangle is built to the requested dimensions
type Rectangle struct {
	Width  float64
	Height float64
}

func (Rectangle) ProductionID() string { return RectangleID }
func (Rectangle) ProduceWith(d Dimensions) Shape {
	return &Rectangle{Width: d.Width, Height: d.Height}
}

func (r *Rectangle) Name() string       { return RectangleID }
func (r *Rectangle) Area() float64      { return r.Width * r.Height }
func (r *Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }
