package registry

import (
	"reflect"

	"github.com/arthur-debert/factory/pkg/errors"
)

// Producible is implemented by production types. Both methods are called on
// the zero value of P, so the id is available without building an instance
// and Produce must not depend on receiver state.
type Producible[I any] interface {
	ProductionID() string
	Produce() I
}

// Registrar records the outcome of one registration. It exists so that a
// registration can be written as a package-level value:
//
//	var _ = registry.AddProduction[Shape, Circle]()
type Registrar struct {
	Interface string
	ID        string
	Producer  string

	// Duplicate is set when the id was already registered
	Duplicate *Duplicate
}

// AddProduction registers P under P.ProductionID() in the process-wide
// registry for I.
func AddProduction[I any, P Producible[I]]() Registrar {
	return AddProductionTo[I, P](For[I]())
}

// AddProductionTo registers P in r
func AddProductionTo[I any, P Producible[I]](r *Registry[I]) Registrar {
	var zero P
	typ := reflect.TypeOf((*P)(nil)).Elem()
	p := producer{name: typ.String(), typ: typ}
	ctor := Constructor[I](func() I {
		var fresh P
		return fresh.Produce()
	})
	return settle(r, zero.ProductionID(), ctor, p)
}

// Add registers ctor under id in the process-wide registry for I
func Add[I any](id string, ctor Constructor[I]) Registrar {
	return AddTo(For[I](), id, ctor)
}

// AddTo registers ctor under id in r
func AddTo[I any](r *Registry[I], id string, ctor Constructor[I]) Registrar {
	if ctor == nil {
		panic(errors.Newf(errors.ErrInvalidInput, "nil constructor for id %q in %s", id, r.Interface()))
	}
	return settle(r, id, ctor, funcProducer(ctor))
}

// settle performs the registration and applies the registry's duplicate
// policy. Invalid input and sealed registries always panic: registrars run
// during initialisation where there is no caller to return an error to.
func settle[I any](r *Registry[I], id string, ctor Constructor[I], p producer) Registrar {
	reg := Registrar{Interface: r.Interface(), ID: r.normalize(id), Producer: p.name}

	err := r.register(id, ctor, p)
	if err == nil {
		return reg
	}

	if !errors.IsErrorCode(err, errors.ErrDuplicateRegistration) {
		panic(err)
	}

	details := errors.GetErrorDetails(err)
	same, _ := details["same_producer"].(bool)
	previous, _ := details["previous"].(string)
	reg.Duplicate = &Duplicate{
		Interface:    reg.Interface,
		ID:           reg.ID,
		Previous:     previous,
		Current:      p.name,
		SameProducer: same,
	}

	if r.Policy() == PolicyStrict {
		panic(errors.Wrapf(err, errors.ErrStrictViolation, "strict registry %s rejected duplicate id %q", reg.Interface, reg.ID).
			WithDetail("interface", reg.Interface).
			WithDetail("id", reg.ID))
	}
	return reg
}
