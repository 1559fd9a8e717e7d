package entt

import "github.com/gotanod/entt/traits"

// FromTraits converts a traits.ComponentTraits, as looked up from a
// traits.Registry, into the ComponentTraits NewStorage expects. The
// two types are structurally identical but kept distinct so the
// traits package never has to import the core.
func FromTraits(t traits.ComponentTraits) ComponentTraits {
	return ComponentTraits{InPlaceDelete: t.InPlaceDelete, PageSize: t.PageSize}
}

// NewStorageFor builds a Storage[T] using whatever traits r currently
// holds for T -- r.Defaults if T has no explicit entry -- so a
// registry populated from a config file (traits.WatchFile) drives the
// deletion policy and page size a storage is constructed with.
func NewStorageFor[T any](r *traits.Registry) *Storage[T] {
	return NewStorage[T](FromTraits(traits.For[T](r)))
}
