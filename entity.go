package entt

import "strconv"

// Entity is an opaque identifier split into an index (low 32 bits,
// the dense address used for sparse lookup) and a version (high 32
// bits, a generation counter the storage layer does not interpret
// beyond the two reserved patterns below).
type Entity uint64

const entityIndexBits = 32
const entityIndexMask = uint64(1)<<entityIndexBits - 1

type entityVersion = uint32

// nullVersion (all ones) and tombstoneVersion (all ones but the
// lowest bit) are two distinct patterns in the version half, so Null
// and Tombstone can never be
// confused with one another or with a real generation count that
// happens to reuse the same index.
const (
	nullVersion      entityVersion = ^entityVersion(0)
	tombstoneVersion entityVersion = ^entityVersion(0) - 1
)

// endOfChain is the index-half value that terminates the in-place
// freelist threaded through tombstoned dense slots.
const endOfChain uint32 = ^uint32(0)

// Null is never stored as a live entity; it is the all-ones pattern.
const Null Entity = Entity(^uint64(0))

// Tombstone marks an abandoned in-place slot. Its index half is
// repurposed to carry the freelist "next" pointer (see sparseSet's
// freelist encoding), so comparing against Tombstone by value only
// makes sense after masking off the index half via IsTombstone.
const Tombstone Entity = Entity(uint64(tombstoneVersion)<<entityIndexBits | uint64(endOfChain))

func newEntity(index uint32, version entityVersion) Entity {
	return Entity(uint64(version)<<entityIndexBits | uint64(index))
}

// NewEntity builds an identifier from an explicit index/version pair.
// Most callers should instead obtain entities from whatever recycles
// indices on their behalf (the registry layer, out of scope here);
// this exists for tests and for callers that manage their own index
// allocation.
func NewEntity(index, version uint32) Entity {
	return newEntity(index, version)
}

// Index returns the low, dense-address half of the identifier.
func (e Entity) Index() uint32 {
	return uint32(uint64(e) & entityIndexMask)
}

// Version returns the high, generation half of the identifier.
func (e Entity) Version() uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

// IsNull reports whether e is the reserved Null sentinel.
func (e Entity) IsNull() bool {
	return e == Null
}

// IsTombstone reports whether e carries the reserved tombstone
// version pattern, regardless of what its index half encodes.
func (e Entity) IsTombstone() bool {
	return e.Version() == tombstoneVersion
}

func (e Entity) String() string {
	switch {
	case e.IsNull():
		return "null"
	case e.IsTombstone():
		return "tombstone"
	default:
		return strconv.FormatUint(uint64(e.Index()), 10) + "#" + strconv.FormatUint(uint64(e.Version()), 10)
	}
}

// freeSlot builds the tombstoned dense entry that threads the
// in-place freelist: its version half is the tombstone pattern, its
// index half is the packed position of the next free slot (or
// endOfChain when this is the tail of the chain).
func freeSlot(next uint32) Entity {
	return newEntity(next, tombstoneVersion)
}

// nextFree reads the freelist "next" pointer out of a tombstoned
// dense entry.
func nextFree(tombstone Entity) uint32 {
	return tombstone.Index()
}
