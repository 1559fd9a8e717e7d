package entt

// Assign replaces s's contents with a copy of other's live entities
// and values, honoring allocator propagation: if other's allocator
// declares PropagateOnCopy, s adopts it; otherwise s keeps its own
// allocator and rebuilds every page through it (spec.md §5's
// "copy-on-container-copy... when the allocator declares it,
// otherwise retained").
func (s *Storage[T]) Assign(other *Storage[T]) {
	alloc := s.alloc
	if propagationOf(other.alloc).PropagateOnCopy() {
		alloc = other.alloc
	}
	traits := ComponentTraits{
		InPlaceDelete: other.policy == InPlace,
		PageSize:      uint32(other.packed.PageSize()),
	}
	fresh := NewStorageWithAllocator[T](traits, alloc)
	for e, v := range other.Each() {
		fresh.Emplace(e, *v)
	}
	*s = *fresh
}

// MoveFrom transfers other's contents into s, leaving other empty.
// When other's allocator declares PropagateOnMove, or the two
// storages already use an equal allocator, this is a cheap handle
// swap; otherwise it falls back to an element-wise rebuild through
// s's own allocator (spec.md §5's "on move assignment with
// non-propagating, non-equal allocators, the target reallocates
// element-wise").
func (s *Storage[T]) MoveFrom(other *Storage[T]) {
	if propagationOf(other.alloc).PropagateOnMove() || allocatorsEqual(s.alloc, other.alloc) {
		moved := *other
		*other = emptyStorageLike(other)
		*s = moved
		return
	}
	s.Assign(other)
	other.Clear()
}

// SwapWith exchanges s's and other's entire contents. Precondition:
// either allocator declares PropagateOnSwap, or the two allocators
// compare equal -- otherwise the exchange would leave pages owned by
// an allocator that disclaims responsibility for them.
func (s *Storage[T]) SwapWith(other *Storage[T]) {
	if !propagationOf(s.alloc).PropagateOnSwap() && !propagationOf(other.alloc).PropagateOnSwap() &&
		!allocatorsEqual(s.alloc, other.alloc) {
		failPrecondition("SwapWith", Null, "allocators do not permit swap propagation")
	}
	*s, *other = *other, *s
}

func emptyStorageLike[T any](other *Storage[T]) Storage[T] {
	var zero T
	return Storage[T]{
		sparseSet: newSparseSet(other.policy, defaultSparsePageSize),
		packed:    newPagedArrayWithAlloc[T](other.packed.PageSize(), zero, other.alloc),
		alloc:     other.alloc,
	}
}
