// Package storage implements the backing representations behind the
// fixedmap containers. One concrete implementation exists per key shape —
// a single optional cell for unit keys, a fixed cell array for
// enumerations, a fixed array of nested storages for composite keys, and a
// hash table for unbounded key domains — all behind the one Storage
// interface. The implementation is selected once, from the shape
// descriptor, when the storage tree is built, and never changes afterwards.
//
// Keys cross this package's boundary type-erased: the typed container in
// the root package converts between its key type parameter and any. Values
// stay fully typed.
package storage

import (
	"fmt"

	"github.com/comalice/fixedmap/shape"
)

// Storage is the uniform operation contract over "slot at key" shared by
// every shape's representation.
//
// Absent keys are not errors: Get, Remove and Ptr simply report absence.
// No operation fails for unit, enum or composite shapes; the slot always
// exists structurally. All enumerates occupied slots and reports whether
// the enumeration ran to completion; the storage must not be mutated while
// it runs.
type Storage[V any] interface {
	// Get returns the value stored at key, if any.
	Get(key any) (V, bool)

	// Ptr returns a pointer to the value stored at key, or nil if the slot
	// is unoccupied. The pointer stays valid until the slot is removed or
	// the storage is cleared.
	Ptr(key any) *V

	// PtrOrInsert returns a pointer to the value stored at key, first
	// occupying the slot with init() if it was empty.
	PtrOrInsert(key any, init func() V) *V

	// Insert places value at key and returns the previous occupant, if any.
	Insert(key any, value V) (V, bool)

	// Remove vacates the slot at key and returns its prior value, if any.
	Remove(key any) (V, bool)

	// Contains reports whether the slot at key is occupied.
	Contains(key any) bool

	// Retain vacates every occupied slot whose (key, value) the keep
	// function rejects. The value pointer may be used to update retained
	// values in place.
	Retain(keep func(key any, value *V) bool)

	// Clear vacates every slot. Idempotent.
	Clear()

	// Len returns the number of occupied slots.
	Len() int

	// All enumerates occupied slots in this shape's iteration order and
	// reports whether yield never returned false.
	All(yield func(key any, value *V) bool) bool

	// Clone returns a deep copy of the storage tree; values are copied by
	// assignment.
	Clone() Storage[V]
}

// New builds the storage tree for a shape descriptor. Every slot of the
// tree, including nested composite sub-storages, is allocated eagerly in
// its unoccupied state; the fixed-size skeleton exists from the start.
//
// New panics on a descriptor whose Kind it does not recognize. Deeper
// inconsistencies (non-contiguous ordinals, partial callbacks) are not
// detectable here and remain the producer's responsibility.
func New[V any](s shape.Shape) Storage[V] {
	switch s.Kind {
	case shape.KindUnit:
		return newSingleton[V](s)
	case shape.KindEnum:
		return newEnum[V](s)
	case shape.KindComposite:
		return newComposite[V](s)
	case shape.KindUnbounded:
		return newUnbounded[V](s)
	default:
		panic(fmt.Sprintf("storage: unknown shape kind %d", s.Kind))
	}
}
