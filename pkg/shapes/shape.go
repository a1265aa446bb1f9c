package shapes

import "fmt"

// Shape is a flat figure
type Shape interface {
	Name() string
	Area() float64
	Perimeter() float64
}

// Solid is a three dimensional body
type Solid interface {
	Name() string
	Volume() float64
	SurfaceArea() float64
}

// Describe renders a shape or solid on one line
func Describe(v any) string {
	switch s := v.(type) {
	case Shape:
		return fmt.Sprintf("%s: area=%.4f perimeter=%.4f", s.Name(), s.Area(), s.Perimeter())
	case Solid:
		return fmt.Sprintf("%s: volume=%.4f surface=%.4f", s.Name(), s.Volume(), s.SurfaceArea())
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
