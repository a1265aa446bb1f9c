package registry

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/factory/pkg/errors"
)

// ConstructorWith builds a new I from construction arguments of type A.
// Several arguments are passed as a struct.
type ConstructorWith[I, A any] func(A) I

// ArgRegistry is the id -> constructor table for productions of I that need
// arguments of type A. Its ids are independent of the plain Registry[I].
type ArgRegistry[I, A any] struct {
	table *Registry[ConstructorWith[I, A]]
}

var _ Catalog = (*ArgRegistry[any, any])(nil)

// NewWith creates an empty, standalone argument-taking registry.
// Process-wide registries are obtained with ForWith.
func NewWith[I, A any](opts ...Option) *ArgRegistry[I, A] {
	table := New[ConstructorWith[I, A]](opts...)
	table.iface = argInterfaceName[I, A]()
	return &ArgRegistry[I, A]{table: table}
}

// argInterfaceName renders the registry name as "pkg.Interface(pkg.Args)"
func argInterfaceName[I, A any]() string {
	return fmt.Sprintf("%s(%s)", reflect.TypeOf((*I)(nil)).Elem(), reflect.TypeOf((*A)(nil)).Elem())
}

// Register stores ctor under id with the same duplicate and seal rules as
// Registry.Register.
func (r *ArgRegistry[I, A]) Register(id string, ctor ConstructorWith[I, A]) error {
	if ctor == nil {
		return errors.Newf(errors.ErrInvalidInput, "nil constructor for id %q in %s", id, r.Interface())
	}
	return r.register(id, ctor, funcProducerOf(ctor))
}

func (r *ArgRegistry[I, A]) register(id string, ctor ConstructorWith[I, A], p producer) error {
	return r.table.register(id, func() ConstructorWith[I, A] { return ctor }, p)
}

// Lookup constructs a new instance for id from args. A missing id yields the
// zero value and false.
func (r *ArgRegistry[I, A]) Lookup(id string, args A) (I, bool) {
	ctor, ok := r.table.Lookup(id)
	if !ok {
		var zero I
		return zero, false
	}
	return ctor(args), true
}

// Produce always reports false: a type-erased caller has no arguments to pass
func (r *ArgRegistry[I, A]) Produce(id string) (any, bool) { return nil, false }

func (r *ArgRegistry[I, A]) Interface() string       { return r.table.Interface() }
func (r *ArgRegistry[I, A]) Policy() Policy          { return r.table.Policy() }
func (r *ArgRegistry[I, A]) List() []string          { return r.table.List() }
func (r *ArgRegistry[I, A]) Count() int              { return r.table.Count() }
func (r *ArgRegistry[I, A]) Has(id string) bool      { return r.table.Has(id) }
func (r *ArgRegistry[I, A]) Entries() []EntryInfo    { return r.table.Entries() }
func (r *ArgRegistry[I, A]) Duplicates() []Duplicate { return r.table.Duplicates() }
func (r *ArgRegistry[I, A]) Seal() bool              { return r.table.Seal() }
func (r *ArgRegistry[I, A]) Sealed() bool            { return r.table.Sealed() }

// argKey keeps argument-taking registries apart from plain ones in the
// process-wide table
type argKey struct {
	iface, args reflect.Type
}

// ForWith returns the process-wide argument-taking registry for I and A,
// creating it on first use.
func ForWith[I, A any]() *ArgRegistry[I, A] {
	key := argKey{iface: reflect.TypeOf((*I)(nil)).Elem(), args: reflect.TypeOf((*A)(nil)).Elem()}
	if r, ok := registries.Load(key); ok {
		return r.(*ArgRegistry[I, A])
	}
	r, _ := registries.LoadOrStore(key, NewWith[I, A](globalOptions()...))
	return r.(*ArgRegistry[I, A])
}

// ProducibleWith is implemented by production types built from arguments.
// Both methods are called on the zero value of P.
type ProducibleWith[I, A any] interface {
	ProductionID() string
	ProduceWith(A) I
}

// AddProductionWith registers P under P.ProductionID() in the process-wide
// argument-taking registry for I and A.
func AddProductionWith[I, A any, P ProducibleWith[I, A]]() Registrar {
	return AddProductionWithTo[I, A, P](ForWith[I, A]())
}

// AddProductionWithTo registers P in r
func AddProductionWithTo[I, A any, P ProducibleWith[I, A]](r *ArgRegistry[I, A]) Registrar {
	var zero P
	typ := reflect.TypeOf((*P)(nil)).Elem()
	p := producer{name: typ.String(), typ: typ}
	ctor := ConstructorWith[I, A](func(args A) I {
		var fresh P
		return fresh.ProduceWith(args)
	})
	return settle(r.table, zero.ProductionID(), func() ConstructorWith[I, A] { return ctor }, p)
}

// AddWith registers ctor under id in the process-wide argument-taking
// registry for I and A
func AddWith[I, A any](id string, ctor ConstructorWith[I, A]) Registrar {
	return AddWithTo(ForWith[I, A](), id, ctor)
}

// AddWithTo registers ctor under id in r
func AddWithTo[I, A any](r *ArgRegistry[I, A], id string, ctor ConstructorWith[I, A]) Registrar {
	if ctor == nil {
		panic(errors.Newf(errors.ErrInvalidInput, "nil constructor for id %q in %s", id, r.Interface()))
	}
	return settle(r.table, id, func() ConstructorWith[I, A] { return ctor }, funcProducerOf(ctor))
}
