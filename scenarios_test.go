package entt_test

import (
	"testing"

	"github.com/gotanod/entt"
	"github.com/stretchr/testify/assert"
)

// Scenarios S2 (sort under swap-and-pop), S3 (sort_as overlap), S4
// (reentrant destruction), and S5 (reentrant construction) are covered
// in sort_test.go and storage_test.go. This file covers S1, S6, and
// S7.

// TestReserveDoesNotInvalidatePointers is spec scenario S1: emplacing
// a value, capturing its pointer, then reserving past the current
// page boundary must not move the already-allocated page.
func TestReserveDoesNotInvalidatePointers(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{PageSize: 4})
	e := entt.NewEntity(0, 0)
	ptr := s.Emplace(e, 42)

	s.Reserve(s.PageSize() + 1)

	assert.Equal(t, 42, *ptr)
	assert.Equal(t, 42, *s.Get(e))
}

// TestEmplaceFuncStrongSafetyOnThrow is spec scenario S6: a value type
// that throws on construction when the value equals 42 leaves the
// storage empty after emplace(e, 42) throws.
func TestEmplaceFuncStrongSafetyOnThrow(t *testing.T) {
	throwIfFortyTwo := func(st *entt.Storage[int]) int {
		v := 42
		if v == 42 {
			panic("construction throws when value equals 42")
		}
		return v
	}

	s := entt.NewStorage[int](entt.ComponentTraits{})
	e := entt.NewEntity(0, 0)

	assert.Panics(t, func() {
		s.EmplaceFunc(e, throwIfFortyTwo)
	})

	assert.True(t, s.Empty())
	assert.False(t, s.Contains(e))
}

// TestPushRangeReusesInPlaceFreelist is spec scenario S7: after
// inserting three entities, erasing two of them under the in-place
// policy, and pushing their entities back as a range, the freelist is
// consumed LIFO against the reversed range order, landing the
// entities at the packed positions the scenario names.
func TestPushRangeReusesInPlaceFreelist(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{InPlaceDelete: true})
	e3, e42, e9 := entt.NewEntity(3, 0), entt.NewEntity(42, 0), entt.NewEntity(9, 0)

	n, err := s.Insert([]entt.Entity{e3, e42, e9}, []int{0, 1, 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	s.Erase(e3)
	s.Erase(e42)

	linked, err := s.PushRange([]entt.Entity{e3, e42})
	assert.NoError(t, err)
	assert.Equal(t, 2, linked)

	entities := s.Entities()
	assert.Equal(t, e3, entities[0])
	assert.Equal(t, e42, entities[1])
	assert.Equal(t, e9, entities[2])
	assert.True(t, s.Contains(e3))
	assert.True(t, s.Contains(e42))
	assert.Equal(t, 3, s.Size())
}
