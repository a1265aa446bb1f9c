package registry

import (
	"reflect"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/factory/pkg/errors"
)

// Constructor builds a new instance of I. Each call must return a fresh
// value; the caller owns it.
type Constructor[I any] func() I

// EntryInfo describes a registered production without exposing its constructor
type EntryInfo struct {
	Interface string `json:"interface" yaml:"interface" toml:"interface"`
	ID        string `json:"id" yaml:"id" toml:"id"`
	Producer  string `json:"producer" yaml:"producer" toml:"producer"`
}

// producer identifies who registered an entry. Typed registrations compare by
// Go type, function registrations by constructor code pointer.
type producer struct {
	name string
	typ  reflect.Type
	pc   uintptr
}

func (p producer) same(o producer) bool {
	if p.typ != nil || o.typ != nil {
		return p.typ == o.typ
	}
	return p.pc == o.pc
}

func funcProducer[I any](ctor Constructor[I]) producer {
	return funcProducerOf(ctor)
}

// funcProducerOf identifies any func value by its code pointer
func funcProducerOf(fn any) producer {
	pc := reflect.ValueOf(fn).Pointer()
	name := "<unknown>"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return producer{name: name, pc: pc}
}

type entry[I any] struct {
	ctor     Constructor[I]
	producer producer
}

// Registry is the id -> constructor table for one interface I.
// It is safe for concurrent use.
type Registry[I any] struct {
	mu         sync.RWMutex
	iface      string
	entries    map[string]entry[I]
	duplicates []Duplicate
	opt        options
	sealed     atomic.Bool
}

// New creates an empty, standalone registry for I.
// Process-wide registries are obtained with For.
func New[I any](opts ...Option) *Registry[I] {
	o := options{policy: PolicyWarn, reporter: LogReporter}
	for _, fn := range opts {
		fn(&o)
	}
	return &Registry[I]{
		iface:   interfaceName[I](),
		entries: make(map[string]entry[I]),
		opt:     o,
	}
}

func interfaceName[I any]() string {
	return reflect.TypeOf((*I)(nil)).Elem().String()
}

// Interface returns the name of the interface type served by this registry
func (r *Registry[I]) Interface() string { return r.iface }

// Policy returns the duplicate policy
func (r *Registry[I]) Policy() Policy { return r.opt.policy }

func (r *Registry[I]) normalize(id string) string {
	if r.opt.normalizer != nil {
		return r.opt.normalizer(id)
	}
	return id
}

// Register stores ctor under id.
//
// When id is already taken the new constructor replaces the old one, the
// duplicate is recorded and reported, and an ErrDuplicateRegistration error
// is returned so the caller can decide whether to continue.
func (r *Registry[I]) Register(id string, ctor Constructor[I]) error {
	if ctor == nil {
		return errors.Newf(errors.ErrInvalidInput, "nil constructor for id %q in %s", id, r.iface)
	}
	return r.register(id, ctor, funcProducer(ctor))
}

func (r *Registry[I]) register(id string, ctor Constructor[I], p producer) error {
	if id == "" {
		return errors.Newf(errors.ErrInvalidInput, "empty id for %s in %s", p.name, r.iface)
	}
	if ctor == nil {
		return errors.Newf(errors.ErrInvalidInput, "nil constructor for id %q in %s", id, r.iface)
	}
	if r.Sealed() {
		return errors.Newf(errors.ErrSealed, "registry %s is sealed, cannot register %q", r.iface, id).
			WithDetail("interface", r.iface).
			WithDetail("id", id)
	}
	id = r.normalize(id)

	r.mu.Lock()
	// Seal takes the same lock, so nothing is inserted once it has returned
	if r.sealed.Load() {
		r.mu.Unlock()
		return errors.Newf(errors.ErrSealed, "registry %s is sealed, cannot register %q", r.iface, id).
			WithDetail("interface", r.iface).
			WithDetail("id", id)
	}
	prev, exists := r.entries[id]
	r.entries[id] = entry[I]{ctor: ctor, producer: p}
	var dup Duplicate
	if exists {
		dup = Duplicate{
			Interface:    r.iface,
			ID:           id,
			Previous:     prev.producer.name,
			Current:      p.name,
			SameProducer: prev.producer.same(p),
		}
		r.duplicates = append(r.duplicates, dup)
	}
	r.mu.Unlock()

	if !exists {
		return nil
	}

	if r.opt.reporter != nil {
		r.opt.reporter(dup)
	}
	return errors.Newf(errors.ErrDuplicateRegistration, "id %q registered twice in %s: %s", id, r.iface, dup.Reason()).
		WithDetails(map[string]interface{}{
			"interface":     dup.Interface,
			"id":            dup.ID,
			"previous":      dup.Previous,
			"current":       dup.Current,
			"same_producer": dup.SameProducer,
		})
}

// Lookup constructs a new instance for id. A missing id yields the zero
// value and false; it is not an error.
func (r *Registry[I]) Lookup(id string) (I, bool) {
	id = r.normalize(id)

	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		var zero I
		return zero, false
	}
	return e.ctor(), true
}

// Produce is Lookup with the result boxed, for callers that only know the
// interface by name.
func (r *Registry[I]) Produce(id string) (any, bool) {
	v, ok := r.Lookup(id)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether id is registered
func (r *Registry[I]) Has(id string) bool {
	id = r.normalize(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// List returns all registered ids in sorted order
func (r *Registry[I]) List() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Count returns the number of registered ids
func (r *Registry[I]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Entries returns a snapshot of all entries sorted by id
func (r *Registry[I]) Entries() []EntryInfo {
	r.mu.RLock()
	infos := make([]EntryInfo, 0, len(r.entries))
	for id, e := range r.entries {
		infos = append(infos, EntryInfo{Interface: r.iface, ID: id, Producer: e.producer.name})
	}
	r.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Duplicates returns every duplicate registration seen so far, in order
func (r *Registry[I]) Duplicates() []Duplicate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Duplicate, len(r.duplicates))
	copy(out, r.duplicates)
	return out
}

// Seal makes the registry read-only. It returns true if this call sealed it.
func (r *Registry[I]) Seal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.sealed.Swap(true)
}

// Sealed reports whether further registrations are rejected
func (r *Registry[I]) Sealed() bool { return r.sealed.Load() }
