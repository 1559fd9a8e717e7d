package entt

// Storage is the generic, typed layer on top of sparseSet: it keeps a
// packed array of component values of type T in lockstep with the
// sparse set's dense array, position for position.
type Storage[T any] struct {
	sparseSet
	packed *pagedArray[T]
	alloc  Allocator[T]

	// OnErase, when set, is called once per Erase/Remove after the
	// entity has been fully unlinked and its value slot destroyed,
	// with the removed value passed by copy. It is the hook a
	// component's "destructor" uses to reentrantly mutate this same
	// storage -- e.g. erasing a dependent entity -- matching the
	// ordering spec.md §4.4 requires (unlink, then destroy, then run
	// arbitrary reentrant code).
	OnErase func(s *Storage[T], e Entity, removed T)
}

// NewStorage creates a Storage[T] governed by traits, using the
// default allocator.
func NewStorage[T any](traits ComponentTraits) *Storage[T] {
	return NewStorageWithAllocator[T](traits, defaultAllocator[T]{})
}

// NewStorageWithAllocator is NewStorage, but pages are obtained from
// alloc rather than the default allocator.
func NewStorageWithAllocator[T any](traits ComponentTraits, alloc Allocator[T]) *Storage[T] {
	var zero T
	return &Storage[T]{
		sparseSet: newSparseSet(traits.policy(), defaultSparsePageSize),
		packed:    newPagedArrayWithAlloc[T](traits.pageSize(), zero, alloc),
		alloc:     alloc,
	}
}

// Allocator returns the allocator this storage was constructed with.
func (s *Storage[T]) Allocator() Allocator[T] { return s.alloc }

// Emplace constructs e's value as v. Precondition: e is not null and
// not already contained.
func (s *Storage[T]) Emplace(e Entity, v T) *T {
	return s.EmplaceFunc(e, func(*Storage[T]) T { return v })
}

// EmplaceFunc is Emplace, but the value is produced by construct
// after the entity has already been linked into sparse/dense -- so a
// reentrant Emplace/Erase construct performs against this same
// storage sees e as contained (spec.md §4.4, S5). If construct
// panics, the linkage is rolled back before the panic propagates,
// preserving Emplace's strong exception-safety guarantee for e
// itself; any reentrant mutation construct already made to other
// entities is not rolled back.
func (s *Storage[T]) EmplaceFunc(e Entity, construct func(*Storage[T]) T) (result *T) {
	pos, undo := s.push(e)
	defer func() {
		if r := recover(); r != nil {
			if undo.appended && int(pos) != len(s.dense)-1 {
				// construct appended other entities behind e: unlink e
				// alone so that they stay linked.
				res := s.eraseAt(e, pos)
				if res.moved {
					*s.packed.At(int(res.pos)) = *s.packed.At(int(res.movedFrom))
				}
			} else {
				s.undoPush(e, pos, undo)
			}
			s.packed.SetLen(len(s.dense))
			panic(r)
		}
	}()
	s.packed.SetLen(max(s.packed.Len(), int(pos)+1))
	ptr := s.packed.At(int(pos))
	*ptr = construct(s)
	return ptr
}

// Get returns a pointer to e's value. Precondition: Contains(e).
func (s *Storage[T]) Get(e Entity) *T {
	pos := s.Index(e)
	return s.packed.At(int(pos))
}

// TryGet returns a pointer to e's value and true, or (nil, false) if
// e is not contained. It never panics.
func (s *Storage[T]) TryGet(e Entity) (*T, bool) {
	pos, ok := s.Find(e)
	if !ok {
		return nil, false
	}
	return s.packed.At(int(pos)), true
}

// ValueOr returns e's value, or fallback if e is not contained.
func (s *Storage[T]) ValueOr(e Entity, fallback T) T {
	if ptr, ok := s.TryGet(e); ok {
		return *ptr
	}
	return fallback
}

// Patch applies mutate to e's value in place and returns a pointer to
// it. Precondition: Contains(e).
func (s *Storage[T]) Patch(e Entity, mutate func(*T)) *T {
	ptr := s.Get(e)
	mutate(ptr)
	return ptr
}

// Erase destroys e's value and unlinks e. Precondition: Contains(e).
func (s *Storage[T]) Erase(e Entity) {
	pos := s.Index(e)
	old := *s.packed.At(int(pos))

	result := s.erase(e)

	var zero T
	if result.moved {
		*s.packed.At(int(result.pos)) = *s.packed.At(int(result.movedFrom))
		*s.packed.At(int(result.movedFrom)) = zero
	} else {
		*s.packed.At(int(result.pos)) = zero
	}
	s.packed.SetLen(len(s.dense))

	if s.OnErase != nil {
		s.OnErase(s, e, old)
	}
}

// Remove is Erase, but reports absence instead of panicking.
func (s *Storage[T]) Remove(e Entity) bool {
	if !s.Contains(e) {
		return false
	}
	s.Erase(e)
	return true
}

// RemoveRange is Remove applied to every entity in entities: each
// contained entity is erased, each absent one is skipped. It returns
// how many were actually removed; if any entity was absent, the first
// one encountered is reported via a NotContainedError, but every
// other present entity in the range is still removed.
func (s *Storage[T]) RemoveRange(entities []Entity) (int, error) {
	removed := 0
	var firstAbsent error
	for _, e := range entities {
		if !s.Contains(e) {
			if firstAbsent == nil {
				firstAbsent = NotContainedError{Entity: e}
			}
			continue
		}
		s.Erase(e)
		removed++
	}
	return removed, firstAbsent
}

// SwapElements exchanges the packed positions of two live entities,
// keeping sparse, dense, and packed in lockstep.
func (s *Storage[T]) SwapElements(a, b Entity) {
	pa := s.Index(a)
	pb := s.Index(b)
	if pa == pb {
		return
	}
	s.sparseSet.swapElements(a, b)
	pta, ptb := s.packed.At(int(pa)), s.packed.At(int(pb))
	*pta, *ptb = *ptb, *pta
}

// PushRange default-constructs values for every entity in entities,
// none of which may already be contained, processing the slice from
// its last element back to its first. It reports basic exception
// safety: on the first already-contained entity, the entities linked
// so far remain linked.
func (s *Storage[T]) PushRange(entities []Entity) (int, error) {
	var zero T
	linked := 0
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if s.Contains(e) {
			return linked, AlreadyContainedError{Entity: e}
		}
		s.Emplace(e, zero)
		linked++
	}
	return linked, nil
}

// InsertValue links every entity in entities to a copy of v. Same
// exception-safety contract as PushRange.
func (s *Storage[T]) InsertValue(entities []Entity, v T) (int, error) {
	for i, e := range entities {
		if s.Contains(e) {
			return i, AlreadyContainedError{Entity: e}
		}
		s.Emplace(e, v)
	}
	return len(entities), nil
}

// Insert links entities[i] to values[i] for each i in order. Same
// exception-safety contract as PushRange. Panics if the two slices
// have different lengths.
func (s *Storage[T]) Insert(entities []Entity, values []T) (int, error) {
	if len(entities) != len(values) {
		panic("entt: Insert: entities and values length mismatch")
	}
	for i, e := range entities {
		if s.Contains(e) {
			return i, AlreadyContainedError{Entity: e}
		}
		s.Emplace(e, values[i])
	}
	return len(entities), nil
}

// Clear destroys every live value and unlinks every entity, without
// releasing sparse or packed page capacity.
func (s *Storage[T]) Clear() {
	var zero T
	for i := 0; i < s.packed.Len(); i++ {
		*s.packed.At(i) = zero
	}
	s.sparseSet.clear()
	s.packed.SetLen(0)
}

// Compact is a no-op under SwapAndPop, which is always fully packed.
// Under InPlace it collapses every tombstone, relocating live values
// from the tail into freed slots so dense/packed shrink to exactly
// Size() entries and every freelist link is dropped. Entities that
// survive Compact keep their value; those moved in from the tail
// change their packed position.
func (s *Storage[T]) Compact() {
	if s.policy != InPlace {
		return
	}

	newLen := s.live
	last := len(s.dense) - 1
	for pos := 0; pos < newLen; pos++ {
		if !s.dense[pos].IsTombstone() {
			continue
		}
		for s.dense[last].IsTombstone() {
			last--
		}
		e := s.dense[last]
		s.dense[pos] = e
		s.setSparse(e, uint32(pos))
		*s.packed.At(pos) = *s.packed.At(last)
		last--
	}

	var zero T
	for i := newLen; i < len(s.dense); i++ {
		*s.packed.At(i) = zero
	}
	s.dense = s.dense[:newLen]
	s.packed.SetLen(newLen)
	s.head = noPos
}

// ShrinkToFit compacts away any tombstones, then releases every
// sparse and packed page beyond what Size() still needs.
func (s *Storage[T]) ShrinkToFit() {
	s.Compact()
	s.packed.ShrinkToFit()
	highest := -1
	for _, e := range s.dense {
		if i := int(e.Index()); i > highest {
			highest = i
		}
	}
	s.sparse.SetLen(highest + 1)
	s.sparse.ShrinkToFit()
}

// Reserve ensures the packed array has enough pages allocated to hold
// n elements without further page allocation. It does not change
// Size() or Len(), and never moves an already-allocated page, so any
// pointer obtained from Get/TryGet/Each survives it (spec.md §4.5).
func (s *Storage[T]) Reserve(n int) {
	s.packed.Reserve(n)
}

// Capacity is the total element capacity of the packed array's
// currently allocated pages.
func (s *Storage[T]) Capacity() int { return s.packed.Cap() }

// PageSize is the fixed element count of each packed page.
func (s *Storage[T]) PageSize() int { return s.packed.PageSize() }

// Raw returns a freshly built copy of the dense-ordered packed
// values, Len() long (tombstoned slots included as zero values). The
// packed array is paged rather than contiguous, so this allocates and
// copies; it exists for inspection and serialization, not as a
// zero-copy view into live storage.
func (s *Storage[T]) Raw() []T {
	out := make([]T, s.packed.Len())
	for i := range out {
		out[i] = s.packed.Peek(i)
	}
	return out
}

// Entities returns a freshly built copy of the dense entity sequence,
// Len() long, in the same order Raw() reports values.
func (s *Storage[T]) Entities() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}
