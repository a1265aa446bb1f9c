package registry_test

import "math"

// Shape is the interface used throughout the registry tests
type Shape interface {
	Name() string
	Area() float64
}

type circle struct{ radius float64 }

func (c *circle) Name() string  { return "circle" }
func (c *circle) Area() float64 { return math.Pi * c.radius * c.radius }

type square struct{ side float64 }

func (s *square) Name() string  { return "square" }
func (s *square) Area() float64 { return s.side * s.side }

func newCircle() Shape { return &circle{radius: 1} }
func newSquare() Shape { return &square{side: 2} }

// Circle and Square are the typed productions
type Circle struct{}

func (Circle) ProductionID() string { return "circle" }
func (Circle) Produce() Shape       { return newCircle() }

type Square struct{}

func (Square) ProductionID() string { return "square" }
func (Square) Produce() Shape       { return newSquare() }

// RoundSquare claims the circle id by mistake
type RoundSquare struct{}

func (RoundSquare) ProductionID() string { return "circle" }
func (RoundSquare) Produce() Shape       { return newSquare() }

// Color is a second, unrelated interface
type Color interface {
	Hex() string
}

type red struct{}

func (red) Hex() string { return "#ff0000" }
