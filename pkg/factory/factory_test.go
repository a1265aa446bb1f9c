package factory_test

import (
	"testing"

	"github.com/arthur-debert/factory/pkg/errors"
	"github.com/arthur-debert/factory/pkg/factory"
	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Vehicle interface{ Wheels() int }

type Bike struct{}

func (Bike) ProductionID() string { return "bike" }
func (Bike) Produce() Vehicle     { return Bike{} }
func (Bike) Wheels() int          { return 2 }

type car struct{}

func (car) Wheels() int { return 4 }

type Engine interface{ Cylinders() int }

type bus struct{ seats int }

func (bus) Wheels() int { return 6 }

// Seating is the construction argument for buses
type Seating struct{ Seats int }

func newBus(s Seating) Vehicle { return bus{seats: s.Seats} }

var (
	_ = registry.AddProduction[Vehicle, Bike]()
	_ = registry.Add[Vehicle]("car", func() Vehicle { return car{} })
	_ = registry.AddWith[Vehicle]("bus", newBus)
)

func TestCreate(t *testing.T) {
	v, ok := factory.Create[Vehicle]("bike")
	require.True(t, ok)
	assert.Equal(t, 2, v.Wheels())

	v, ok = factory.Create[Vehicle]("car")
	require.True(t, ok)
	assert.Equal(t, 4, v.Wheels())

	v, ok = factory.Create[Vehicle]("boat")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestCreateDispatchesByInterface(t *testing.T) {
	_, ok := factory.Create[Engine]("bike")
	assert.False(t, ok, "ids registered for Vehicle do not resolve for Engine")
	assert.Empty(t, factory.Available[Engine]())
}

func TestCreateE(t *testing.T) {
	v, err := factory.CreateE[Vehicle]("car")
	require.NoError(t, err)
	assert.Equal(t, 4, v.Wheels())

	_, err = factory.CreateE[Vehicle]("boat")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "boat", details["id"])
	assert.Equal(t, []string{"bike", "car"}, details["available"])
}

func TestMustCreate(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, 2, factory.MustCreate[Vehicle]("bike").Wheels())
	})
	assert.Panics(t, func() { factory.MustCreate[Vehicle]("boat") })
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"bike", "car"}, factory.Available[Vehicle]())
}

func TestCreateWith(t *testing.T) {
	v, ok := factory.CreateWith[Vehicle]("bus", Seating{Seats: 40})
	require.True(t, ok)
	assert.Equal(t, 6, v.Wheels())
	assert.Equal(t, 40, v.(bus).seats)

	_, ok = factory.CreateWith[Vehicle]("bike", Seating{Seats: 1})
	assert.False(t, ok, "plain productions do not take arguments")

	_, ok = factory.Create[Vehicle]("bus")
	assert.False(t, ok, "argument-taking productions need their arguments")

	assert.Equal(t, []string{"bus"}, factory.AvailableWith[Vehicle, Seating]())
}

func TestCreateWithE(t *testing.T) {
	v, err := factory.CreateWithE[Vehicle]("bus", Seating{Seats: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, v.(bus).seats)

	_, err = factory.CreateWithE[Vehicle]("tram", Seating{Seats: 12})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "factory_test.Vehicle(factory_test.Seating)", details["interface"])
	assert.Equal(t, []string{"bus"}, details["available"])
}
