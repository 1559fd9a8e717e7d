// Package traits holds the component-traits and type-identity
// registry: a runtime-specializable table of ComponentTraits keyed by
// a stable per-process type identity, with file-backed defaults and
// optional hot reload. It is kept separate from the entt package so
// that an external registry can depend on it without pulling in the
// sparse-set/storage core.
package traits

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/kamstrup/intmap"
)

// ComponentTraits bundles the per-type policy entt.Storage[T] needs
// at construction time: which deletion policy to use and how many
// elements its packed pages hold.
type ComponentTraits struct {
	InPlaceDelete bool   `yaml:"in_place_delete"`
	PageSize      uint32 `yaml:"page_size"`
}

var (
	typeIDs sync.Map // map[reflect.Type]uint32
	nextID  atomic.Uint32
)

// IDOf returns a uint32 identity for t, stable for the lifetime of
// the process and dense starting from zero, assigning a fresh one the
// first time t is seen. It favors a plain sync.Map plus atomic
// counter over the teacher's unsafe.Pointer type-hash trick, since
// this registry only needs process-local stability, not the teacher's
// cross-archetype hash.
func IDOf(t reflect.Type) uint32 {
	if v, ok := typeIDs.Load(t); ok {
		return v.(uint32)
	}
	id := nextID.Add(1) - 1
	actual, _ := typeIDs.LoadOrStore(t, id)
	return actual.(uint32)
}

// TypeID is IDOf for a type parameter instead of a reflect.Type
// value.
func TypeID[T any]() uint32 {
	return IDOf(reflect.TypeFor[T]())
}

// Registry maps type identities to ComponentTraits, falling back to
// Defaults for any type that has no explicit entry. The lookup table
// is github.com/kamstrup/intmap's integer-keyed map, the same choice
// the teacher makes for its own hot-path EntityId lookups
// (ecs/archetype.go's refs field) repurposed here for type-id lookups.
type Registry struct {
	mu       sync.RWMutex
	table    *intmap.Map[uint32, ComponentTraits]
	Defaults ComponentTraits
}

// NewRegistry creates an empty Registry. Defaults starts as the zero
// ComponentTraits (SwapAndPop, default page size).
func NewRegistry() *Registry {
	return &Registry{table: intmap.New[uint32, ComponentTraits](64)}
}

// Set records t as the traits for the type identified by id.
func (r *Registry) Set(id uint32, t ComponentTraits) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.Put(id, t)
}

// SetFor is Set keyed by a type parameter instead of a raw id.
func SetFor[T any](r *Registry, t ComponentTraits) {
	r.Set(TypeID[T](), t)
}

// For looks up T's traits, returning r.Defaults if none were set.
func For[T any](r *Registry) ComponentTraits {
	return r.ForID(TypeID[T]())
}

// ForID is For keyed by a raw type id.
func (r *Registry) ForID(id uint32) ComponentTraits {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.table.Get(id); ok {
		return v
	}
	return r.Defaults
}

// Unset removes any explicit entry for id, reverting it to Defaults.
func (r *Registry) Unset(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.Del(id)
}

// Reset drops every explicit entry, leaving only Defaults.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table.Clear()
}
