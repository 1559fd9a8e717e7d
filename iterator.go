package entt

import "iter"

// Each yields (entity, *value) tuples in reverse dense order -- the
// same orientation as begin/end (spec.md §4.5): last inserted first
// under a plain append sequence, and always the orientation Sort's
// comparator result reads ascending in. Because SwapAndPop erase only
// ever relocates an entity from the tail into the erased slot,
// erasing the just-yielded entity from within the loop body never
// causes another entity to be skipped or revisited.
func (s *Storage[T]) Each() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for pos := len(s.dense) - 1; pos >= 0; pos-- {
			e := s.dense[pos]
			if e.IsTombstone() {
				continue
			}
			if !yield(e, s.packed.At(pos)) {
				return
			}
		}
	}
}

// Reach yields (entity, *value) tuples in forward dense order -- the
// same orientation as rbegin/rend (spec.md §4.5), and the order Raw
// and Entities report. Erasing the just-yielded entity from within
// the loop body is not safe under SwapAndPop, since the relocated
// tail entity can land ahead of the cursor.
func (s *Storage[T]) Reach() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for pos := 0; pos < len(s.dense); pos++ {
			e := s.dense[pos]
			if e.IsTombstone() {
				continue
			}
			if !yield(e, s.packed.At(pos)) {
				return
			}
		}
	}
}

// Values iterates every live value in Each's orientation, entity
// identities omitted.
func (s *Storage[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for pos := len(s.dense) - 1; pos >= 0; pos-- {
			if s.dense[pos].IsTombstone() {
				continue
			}
			if !yield(s.packed.At(pos)) {
				return
			}
		}
	}
}
