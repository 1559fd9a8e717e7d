package entt

import "github.com/gotanod/entt/traits"

// ErasedStorage is the type-erased capability surface a Storage[T]
// satisfies regardless of T -- the untyped base handle spec.md §6
// describes, adapted from the teacher's iComponentStorage interface
// (ecs/icomponent_storage.go). A collaborator holding many different
// Storage[T] instances (a registry, out of scope here) dispatches
// across them through this interface without naming T.
type ErasedStorage interface {
	Policy() DeletionPolicy
	TypeID() uint32
	Size() int
	Empty() bool
	Contains(e Entity) bool
	Value(e Entity) any
}

// Value returns e's component value boxed as any. Precondition:
// Contains(e). It is the erased counterpart of Get, for callers that
// only hold an ErasedStorage.
func (s *Storage[T]) Value(e Entity) any {
	return *s.Get(e)
}

// TypeID is the component type identity traits.TypeID[T] assigns,
// exposed on Storage itself so a caller holding only an ErasedStorage
// can still distinguish which component type it is looking at.
func (s *Storage[T]) TypeID() uint32 {
	return traits.TypeID[T]()
}

var _ ErasedStorage = (*Storage[int])(nil)
