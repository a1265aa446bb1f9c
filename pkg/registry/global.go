package registry

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/factory/pkg/config"
)

// Catalog is the type-erased view of a registry, used to walk every
// process-wide registry without knowing the interface types.
type Catalog interface {
	Interface() string
	Policy() Policy
	List() []string
	Count() int
	Has(id string) bool
	Entries() []EntryInfo
	Duplicates() []Duplicate
	Produce(id string) (any, bool)
	Seal() bool
	Sealed() bool
}

var _ Catalog = (*Registry[any])(nil)

// registries holds one *Registry[I] per interface type, keyed by reflect.Type
var registries sync.Map

// For returns the process-wide registry for I, creating it on first use.
// It is safe to call from any package initialiser in any order.
func For[I any]() *Registry[I] {
	key := reflect.TypeOf((*I)(nil)).Elem()
	if r, ok := registries.Load(key); ok {
		return r.(*Registry[I])
	}
	r, _ := registries.LoadOrStore(key, New[I](globalOptions()...))
	return r.(*Registry[I])
}

// globalOptions derives registry options from the process-wide configuration
func globalOptions() []Option {
	cfg := config.Get()

	opts := []Option{WithReporter(LogReporter)}
	if cfg.Registry.Strict {
		opts = append(opts, WithPolicy(PolicyStrict))
	}
	if cfg.Registry.CaseFold {
		opts = append(opts, WithCaseFoldLower())
	}
	return opts
}

// Catalogs returns every process-wide registry sorted by interface name
func Catalogs() []Catalog {
	var out []Catalog
	registries.Range(func(_, v any) bool {
		out = append(out, v.(Catalog))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Interface() < out[j].Interface() })
	return out
}

// CatalogFor finds a process-wide registry by interface name. Both the
// qualified ("shapes.Shape") and bare ("shape") names match, case-insensitively.
// Argument-taking registries are named with their argument type,
// "shapes.Shape(shapes.Size)" or "shape(size)".
func CatalogFor(name string) (Catalog, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}

	var bare Catalog
	for _, c := range Catalogs() {
		full := strings.ToLower(c.Interface())
		if full == name {
			return c, true
		}
		if bare == nil && shortName(full) == name {
			bare = c
		}
	}
	return bare, bare != nil
}

// shortName drops package qualifiers: "shapes.shape(shapes.size)" -> "shape(size)"
func shortName(qualified string) string {
	if i := strings.Index(qualified, "("); i >= 0 && strings.HasSuffix(qualified, ")") {
		return shortName(qualified[:i]) + "(" + shortName(qualified[i+1:len(qualified)-1]) + ")"
	}
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// SealAll seals every process-wide registry and returns how many changed state
func SealAll() int {
	n := 0
	for _, c := range Catalogs() {
		if c.Seal() {
			n++
		}
	}
	return n
}

// AllDuplicates collects the duplicates recorded by every process-wide registry
func AllDuplicates() []Duplicate {
	var out []Duplicate
	for _, c := range Catalogs() {
		out = append(out, c.Duplicates()...)
	}
	return out
}
