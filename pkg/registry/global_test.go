package registry_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/factory/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Greeter is only ever registered through the process-wide registry
type Greeter interface {
	Greet() string
}

type English struct{}

func (English) ProductionID() string { return "english" }
func (English) Produce() Greeter     { return English{} }
func (English) Greet() string        { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

func newFrench() Greeter { return french{} }

// Registered while the test binary initialises, before any test runs.
var (
	englishRegistrar = registry.AddProduction[Greeter, English]()
	_                = registry.Add[Greeter]("french", newFrench)
)

func TestInitTimeRegistration(t *testing.T) {
	assert.Equal(t, "english", englishRegistrar.ID)
	assert.Equal(t, "registry_test.Greeter", englishRegistrar.Interface)
	assert.Nil(t, englishRegistrar.Duplicate)

	g, ok := registry.For[Greeter]().Lookup("english")
	require.True(t, ok)
	assert.Equal(t, "hello", g.Greet())

	g, ok = registry.For[Greeter]().Lookup("french")
	require.True(t, ok)
	assert.Equal(t, "bonjour", g.Greet())

	_, ok = registry.For[Greeter]().Lookup("klingon")
	assert.False(t, ok)
}

func TestForIsASingletonPerInterface(t *testing.T) {
	assert.Same(t, registry.For[Greeter](), registry.For[Greeter]())

	_, ok := registry.For[Color]().Lookup("english")
	assert.False(t, ok, "registrations for Greeter are invisible to Color")
}

func TestForConcurrentFirstUse(t *testing.T) {
	type firstUse interface{ Ping() }

	const goroutines = 16
	got := make([]*registry.Registry[firstUse], goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = registry.For[firstUse]()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, got[0], got[i])
	}
}

func TestCatalogs(t *testing.T) {
	registry.For[Greeter]()
	registry.For[Color]()

	var names []string
	for _, c := range registry.Catalogs() {
		names = append(names, c.Interface())
	}
	assert.Contains(t, names, "registry_test.Greeter")
	assert.Contains(t, names, "registry_test.Color")
	assert.IsIncreasing(t, names)
}

func TestCatalogFor(t *testing.T) {
	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"qualified", "registry_test.Greeter", true},
		{"bare", "greeter", true},
		{"upper case", "GREETER", true},
		{"padded", "  Greeter ", true},
		{"unknown", "Weather", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := registry.CatalogFor(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, "registry_test.Greeter", c.Interface())
				assert.ElementsMatch(t, []string{"english", "french"}, c.List())

				v, ok := c.Produce("english")
				require.True(t, ok)
				assert.Equal(t, "hello", v.(Greeter).Greet())
			}
		})
	}
}

func TestAllDuplicates(t *testing.T) {
	for _, d := range registry.AllDuplicates() {
		assert.NotEqual(t, "registry_test.Greeter", d.Interface, "Greeter productions use distinct ids")
	}
}
