package shapes

import (
	"math"

	"github.com/arthur-debert/factory/pkg/registry"
)

// HexagonID identifies the hexagon production
const HexagonID = "hexagon"

// Hexagon registers through a plain constructor rather than a production type
var _ = registry.Add[Shape](HexagonID, NewHexagon)

// Hexagon is a regular hexagon
type Hexagon struct {
	Side float64
}

// NewHexagon returns a hexagon with unit side
func NewHexagon() Shape { return &Hexagon{Side: 1} }

func (h *Hexagon) Name() string       { return HexagonID }
func (h *Hexagon) Area() float64      { return 3 * math.Sqrt(3) / 2 * h.Side * h.Side }
func (h *Hexagon) Perimeter() float64 { return 6 * h.Side }
