/*
Package entt implements the component storage engine of an
Entity-Component-System runtime: a sparse set mapping entity
identifiers to a dense, packed sequence, and a generic typed storage
layered on top of it that holds component values of a single type.

Core Concepts:

  - Entity: an opaque identifier split into an index and a version.
  - sparse set (the unexported sparseSet, whose query methods are
    promoted onto Storage[T]): the untyped bijection between entity
    index and packed position, with O(1) push/erase/contains/index/find.
  - Storage[T]: a sparse set plus a parallel packed array of values of
    type T, with a deletion policy selected per component type.

Basic Usage:

	positions := entt.NewStorage[Position](entt.ComponentTraits{})
	positions.Emplace(e, Position{X: 1, Y: 2})

	for _, pos := range positions.Each() {
		pos.X += 1
	}

This package is the storage core of a larger ECS; the registry, view,
and group layer that assembles multiple Storage[T] instances into
queries over entities is intentionally out of scope here.
*/
package entt
