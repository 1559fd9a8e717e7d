package entt_test

import (
	"testing"

	"github.com/gotanod/entt"
	"github.com/stretchr/testify/assert"
)

// TestSortUnorderedSwapAndPop is spec scenario S2.
func TestSortUnorderedSwapAndPop(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{})

	entities := []entt.Entity{
		entt.NewEntity(12, 0),
		entt.NewEntity(42, 0),
		entt.NewEntity(7, 0),
		entt.NewEntity(3, 0),
		entt.NewEntity(9, 0),
	}
	values := []int{6, 3, 1, 9, 12}
	for i, e := range entities {
		s.Emplace(e, values[i])
	}

	s.Sort(func(a, b int) bool { return a < b })

	var gotValues []int
	for v := range s.Values() {
		gotValues = append(gotValues, *v)
	}
	assert.Equal(t, []int{1, 3, 6, 9, 12}, gotValues)

	raw := s.Entities()
	var rawIdx []uint32
	for _, e := range raw {
		rawIdx = append(rawIdx, e.Index())
	}
	assert.Equal(t, []uint32{9, 3, 12, 42, 7}, rawIdx)
}

// TestSortAsOverlap is spec scenario S3.
func TestSortAsOverlap(t *testing.T) {
	lhs := entt.NewStorage[int](entt.ComponentTraits{})
	e3, e12, e42 := entt.NewEntity(3, 0), entt.NewEntity(12, 0), entt.NewEntity(42, 0)
	lhs.Emplace(e3, 3)
	lhs.Emplace(e12, 6)
	lhs.Emplace(e42, 9)

	rhs := entt.NewStorage[int](entt.ComponentTraits{})
	rhs.Emplace(e12, 6)

	lhs.SortAs(rhs.Entities())

	var gotValues []int
	for _, v := range lhs.Each() {
		gotValues = append(gotValues, *v)
	}
	assert.Equal(t, []int{6, 9, 3}, gotValues)

	var gotEntities []uint32
	for _, e := range lhs.Entities() {
		gotEntities = append(gotEntities, e.Index())
	}
	assert.Equal(t, []uint32{3, 42, 12}, gotEntities)
}

func TestSortNOnlyAffectsPrefix(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{})
	entities := []entt.Entity{entt.NewEntity(1, 0), entt.NewEntity(2, 0), entt.NewEntity(3, 0), entt.NewEntity(4, 0)}
	values := []int{4, 3, 2, 1}
	for i, e := range entities {
		s.Emplace(e, values[i])
	}

	s.SortN(2, func(a, b int) bool { return a < b })

	entitiesAfter := s.Entities()
	assert.Equal(t, entities[2], entitiesAfter[2])
	assert.Equal(t, entities[3], entitiesAfter[3])
}

func TestSortPrecondition_RequiresNoTombstones(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{InPlaceDelete: true})
	e1, e2 := entt.NewEntity(1, 0), entt.NewEntity(2, 0)
	s.Emplace(e1, 1)
	s.Emplace(e2, 2)
	s.Erase(e1)

	assert.Panics(t, func() {
		s.Sort(func(a, b int) bool { return a < b })
	})

	s.Compact()
	assert.NotPanics(t, func() {
		s.Sort(func(a, b int) bool { return a < b })
	})
}

// TestSortIsAPermutationCongruentWithPacked is property P8.
func TestSortIsAPermutationCongruentWithPacked(t *testing.T) {
	s := entt.NewStorage[int](entt.ComponentTraits{})
	entities := make([]entt.Entity, 8)
	before := make(map[entt.Entity]int, 8)
	for i := range entities {
		entities[i] = entt.NewEntity(uint32(i), 0)
		v := (i * 37) % 11
		before[entities[i]] = v
		s.Emplace(entities[i], v)
	}

	s.Sort(func(a, b int) bool { return a < b })

	prev := -1
	count := 0
	for e, v := range s.Each() {
		assert.Equal(t, before[e], *v, "value must travel with its entity")
		assert.GreaterOrEqual(t, *v, prev)
		prev = *v
		count++
	}
	assert.Equal(t, len(entities), count)
}
