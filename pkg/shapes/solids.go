package shapes

import (
	"math"

	"github.com/arthur-debert/factory/pkg/registry"
)

// Solid production ids
const (
	// CubeID identifies the cube production
	CubeID = "cube"
	// SphereID identifies the sphere production
	SphereID = "sphere"
)

var (
	_ = registry.AddProduction[Solid, Cube]()
	_ = registry.AddProduction[Solid, Sphere]()
)

// Cube is produced with a unit edge
type Cube struct {
	Edge float64
}

func (Cube) ProductionID() string { return CubeID }
func (Cube) Produce() Solid       { return &Cube{Edge: 1} }

func (c *Cube) Name() string         { return CubeID }
func (c *Cube) Volume() float64      { return c.Edge * c.Edge * c.Edge }
func (c *Cube) SurfaceArea() float64 { return 6 * c.Edge * c.Edge }

// Sphere is produced with a unit radius
type Sphere struct {
	Radius float64
}

func (Sphere) ProductionID() string { return SphereID }
func (Sphere) Produce() Solid       { return &Sphere{Radius: 1} }

func (s *Sphere) Name() string         { return SphereID }
func (s *Sphere) Volume() float64      { return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius }
func (s *Sphere) SurfaceArea() float64 { return 4 * math.Pi * s.Radius * s.Radius }
