// Package factory builds instances of any registered interface by id without
// naming the registry type.
package factory

import (
	"github.com/arthur-debert/factory/pkg/errors"
	"github.com/arthur-debert/factory/pkg/registry"
)

// Create returns a new I registered under id, or false when id is unknown
func Create[I any](id string) (I, bool) {
	return registry.For[I]().Lookup(id)
}

// CreateE is Create for callers that prefer an error on a miss
func CreateE[I any](id string) (I, error) {
	reg := registry.For[I]()
	v, ok := reg.Lookup(id)
	if !ok {
		return v, errors.Newf(errors.ErrNotFound, "no production %q for %s", id, reg.Interface()).
			WithDetail("interface", reg.Interface()).
			WithDetail("id", id).
			WithDetail("available", reg.List())
	}
	return v, nil
}

// MustCreate is Create for ids that are known to exist. It panics on a miss.
func MustCreate[I any](id string) I {
	v, err := CreateE[I](id)
	if err != nil {
		panic(err)
	}
	return v
}

// Available lists the ids registered for I
func Available[I any]() []string {
	return registry.For[I]().List()
}

// CreateWith returns a new I built from args by the production registered
// under id for argument type A, or false when id is unknown
func CreateWith[I, A any](id string, args A) (I, bool) {
	return registry.ForWith[I, A]().Lookup(id, args)
}

// CreateWithE is CreateWith for callers that prefer an error on a miss
func CreateWithE[I, A any](id string, args A) (I, error) {
	reg := registry.ForWith[I, A]()
	v, ok := reg.Lookup(id, args)
	if !ok {
		return v, errors.Newf(errors.ErrNotFound, "no production %q for %s", id, reg.Interface()).
			WithDetail("interface", reg.Interface()).
			WithDetail("id", id).
			WithDetail("available", reg.List())
	}
	return v, nil
}

// AvailableWith lists the ids registered for I with arguments of type A
func AvailableWith[I, A any]() []string {
	return registry.ForWith[I, A]().List()
}
