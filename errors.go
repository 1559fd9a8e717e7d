package entt

import "fmt"

// PreconditionError is raised (via panic) when an operation is called
// on an entity that does not satisfy its documented precondition --
// e.g. Get/Index/Patch/SwapElements on an absent entity, or sort on a
// storage that still has tombstones. spec.md §7 treats these as a
// deliberate zero-overhead, debug-fatal contract: release builds of
// the reference implementation leave the behavior undefined, but a Go
// panic is the idiomatic equivalent of "fatal in the caller's face"
// without needing a separate build mode.
type PreconditionError struct {
	Op     string
	Entity Entity
	Reason string
}

func (e PreconditionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("entt: %s: %s (entity %s)", e.Op, e.Reason, e.Entity)
	}
	return fmt.Sprintf("entt: %s: precondition violated (entity %s)", e.Op, e.Entity)
}

func failPrecondition(op string, e Entity, reason string) {
	panic(PreconditionError{Op: op, Entity: e, Reason: reason})
}

// AlreadyContainedError is returned by bulk Push/Insert when an
// entity in the range is already present in the destination -- a
// precondition violation on a path that returns errors rather than
// panicking, since bulk operations report basic exception safety
// (partial application, not "impossible to observe" strong safety).
type AlreadyContainedError struct {
	Entity Entity
}

func (e AlreadyContainedError) Error() string {
	return fmt.Sprintf("entt: entity %s is already contained", e.Entity)
}

// NotContainedError is returned by operations that accept a
// not-necessarily-present entity and need to report absence as a
// value rather than a panic (e.g. RemoveRange reporting the first of
// its argument entities that did not exist).
type NotContainedError struct {
	Entity Entity
}

func (e NotContainedError) Error() string {
	return fmt.Sprintf("entt: entity %s is not contained", e.Entity)
}
