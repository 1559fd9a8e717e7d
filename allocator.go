package entt

// Allocator abstracts how a Storage[T] obtains the backing slice for
// a newly allocated page. It is Go's stand-in for the C++ allocator
// spec.md §5 requires propagation semantics for: there is no notion
// of a raw memory arena here, only of who is asked to produce the
// slice a page owns.
type Allocator[T any] interface {
	NewSlice(n int) []T
}

// defaultAllocator is used by the zero value of Storage[T]; it simply
// calls make, and propagates unconditionally on copy, move, and swap
// (mirroring std::allocator's always-equal, always-propagate
// behavior, since a defaultAllocator instance carries no state to
// diverge between two Storages).
type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) NewSlice(n int) []T { return make([]T, n) }

func (defaultAllocator[T]) PropagateOnCopy() bool { return true }
func (defaultAllocator[T]) PropagateOnMove() bool { return true }
func (defaultAllocator[T]) PropagateOnSwap() bool { return true }

// AllocatorPropagation is implemented by allocators that need to
// state non-default propagation behavior -- e.g. an arena allocator
// that must never be silently swapped out from under live pages. An
// allocator that does not implement this interface is treated as
// always-propagating, matching defaultAllocator.
type AllocatorPropagation interface {
	PropagateOnCopy() bool
	PropagateOnMove() bool
	PropagateOnSwap() bool
}

func propagationOf(a any) AllocatorPropagation {
	if p, ok := a.(AllocatorPropagation); ok {
		return p
	}
	return alwaysPropagate{}
}

type alwaysPropagate struct{}

func (alwaysPropagate) PropagateOnCopy() bool { return true }
func (alwaysPropagate) PropagateOnMove() bool { return true }
func (alwaysPropagate) PropagateOnSwap() bool { return true }

// allocatorsEqual reports whether two allocators would service pages
// interchangeably. Non-comparable allocator implementations are
// conservatively treated as unequal, which is always safe: it just
// forces an element-wise rebuild instead of a cheap handle swap.
func allocatorsEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
