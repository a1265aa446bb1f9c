package shapes

import "github.com/arthur-debert/factory/pkg/registry"

// SquareID identifies the square production
const SquareID = "square"

var _ = registry.AddProduction[Shape, Square]()

// Square is produced with a unit side
type Square struct {
	Side float64
}

func (Square) ProductionID() string { return SquareID }
func (Square) Produce() Shape       { return &Square{Side: 1} }

func (s *Square) Name() string       { return SquareID }
func (s *Square) Area() float64      { return s.Side * s.Side }
func (s *Square) Perimeter() float64 { return 4 * s.Side }
