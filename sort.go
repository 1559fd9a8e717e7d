package entt

import "sort"

// Sort reorders every live entity by less, a strict weak ordering
// over values. Precondition: the storage has no tombstones -- under
// InPlace, Compact first.
func (s *Storage[T]) Sort(less func(a, b T) bool) {
	s.SortN(len(s.dense), less)
}

// SortN is Sort, but only the first n dense positions participate;
// entities beyond n keep their relative order. Passing n >= Len() is
// equivalent to Sort. Precondition: the first n dense positions hold
// no tombstones; tombstones beyond n are allowed.
func (s *Storage[T]) SortN(n int, less func(a, b T) bool) {
	if n > len(s.dense) {
		n = len(s.dense)
	}
	for _, e := range s.dense[:max(n, 0)] {
		if e.IsTombstone() {
			failPrecondition("Sort", Null, "storage has tombstones")
		}
	}
	if n < 2 {
		return
	}

	order := make([]Entity, n)
	copy(order, s.dense[:n])
	values := make([]T, n)
	for i, e := range order {
		values[i] = *s.Get(e)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return less(values[idx[i]], values[idx[j]])
	})

	// idx is ascending by value (idx[0] names the smallest). The
	// storage's forward iteration (Each) walks dense from the last
	// position back to the first, so the smallest value belongs at
	// the highest dense position: place idx in reverse into the
	// ascending-index prefix dense[0:n).
	target := make([]Entity, n)
	for i, j := range idx {
		target[n-1-i] = order[j]
	}
	s.applyOrder(target)
}

// SortAs reorders this storage so that entities shared with order
// appear in the same relative order order does, trailing behind every
// entity order does not mention, which keep their current relative
// order. The final dense layout (forward) is: private entities first,
// then shared entities in order's forward order. Precondition: no
// tombstones.
func (s *Storage[T]) SortAs(order []Entity) {
	if s.hasTombstones() {
		failPrecondition("SortAs", Null, "storage has tombstones")
	}

	shared := make(map[Entity]bool, len(order))
	for _, e := range order {
		if s.Contains(e) {
			shared[e] = true
		}
	}

	target := make([]Entity, 0, len(s.dense))
	for _, e := range s.dense {
		if !shared[e] {
			target = append(target, e)
		}
	}
	for _, e := range order {
		if shared[e] {
			target = append(target, e)
		}
	}
	s.applyOrder(target)
}

// applyOrder places each entity in target at its matching dense
// position by swapping it in from wherever it currently sits,
// fixing each position exactly once.
func (s *Storage[T]) applyOrder(target []Entity) {
	for pos, want := range target {
		if s.dense[pos] == want {
			continue
		}
		s.SwapElements(s.dense[pos], want)
	}
}
