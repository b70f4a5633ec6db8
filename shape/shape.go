// Package shape describes the structural classification of key types used
// by the fixedmap containers. A Shape tells the container how a key type
// decomposes — into a single value, a closed set of ordered variants, a
// closed set of variants each carrying a nested key, or an open domain that
// can only be addressed by hashing — and the container picks its backing
// storage representation from that description once, at construction time.
//
// Shapes are plain immutable values. They are normally produced by a
// KeyShape method on the key type itself, but nothing in this package
// requires that; a code generator or a hand-rolled descriptor works the
// same way.
package shape

import (
	"github.com/cockroachdb/swiss"
	"golang.org/x/exp/constraints"
)

// Kind enumerates the four structural classes of key types.
type Kind uint8

const (
	// KindUnit is a key type with exactly one inhabitant. Storage is a single
	// optional value cell; no discriminant is ever stored.
	KindUnit Kind = iota
	// KindEnum is a closed, ordered set of variants carrying no payload.
	// Storage is a fixed array of optional value cells addressed by each
	// variant's zero-based ordinal.
	KindEnum
	// KindComposite is a closed, ordered set of variants where each variant
	// carries one nested key. Storage is a fixed array of nested storages,
	// one per variant.
	KindComposite
	// KindUnbounded is an open key domain with no finite enumeration. Storage
	// falls back to a hash table keyed by equality.
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindEnum:
		return "enum"
	case KindComposite:
		return "composite"
	case KindUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Shape is the static descriptor consumed by the container core. Which
// fields are set depends on Kind; use the constructors in this package
// rather than filling the struct in by hand unless the key type is too
// irregular for them.
//
// A Shape must stay internally consistent: ordinals contiguous from zero,
// Variants matching the slices and callbacks, and every callback total over
// the key domain it claims. The container does not re-check this at
// runtime; an inconsistent descriptor is a programming error.
type Shape struct {
	// Kind selects the storage representation.
	Kind Kind

	// Variants is the number of variants for Enum and Composite shapes.
	Variants int

	// Ordinal maps a key value to its zero-based declaration-order ordinal.
	// Set for Enum shapes.
	Ordinal func(key any) int

	// Key rebuilds the key value at a given ordinal. Set for Enum shapes;
	// for Unit shapes Key(0) returns the canonical single value.
	Key func(ordinal int) any

	// Split maps a composite key to its outer ordinal and the nested key
	// carried by that variant. Set for Composite shapes.
	Split func(key any) (ordinal int, inner any)

	// Join rebuilds a composite key from an outer ordinal and a nested key
	// value, inverting Split. Set for Composite shapes.
	Join func(ordinal int, inner any) any

	// Inner holds the nested key shape of each Composite variant, indexed
	// by ordinal. Payload-less variants use a Singleton shape.
	Inner []Shape

	// NewTable builds a fresh backing table for Unbounded shapes.
	NewTable func() Table
}

// Table is the contract an Unbounded shape's backing hash table fulfils.
// Keys and values are type-erased; the table compares keys by equality and
// never needs to see inside a value.
//
// All is a single-pass enumeration in unspecified order; the table must not
// be mutated while it runs.
type Table interface {
	Get(key any) (any, bool)
	Put(key any, value any)
	Delete(key any)
	Len() int
	Clear()
	All(yield func(key any, value any) bool)
}

// Singleton returns the Shape of a key type with exactly one value. The
// given key is canonical: it is what iteration over the container yields.
func Singleton(key any) Shape {
	return Shape{
		Kind: KindUnit,
		Key:  func(int) any { return key },
	}
}

// Enum returns the Shape of an integer-backed enumeration whose variants
// are the values 0 through n-1 in declaration order.
func Enum[K constraints.Integer](n int) Shape {
	if n <= 0 {
		panic("shape: enum must have at least one variant")
	}
	return Shape{
		Kind:     KindEnum,
		Variants: n,
		Ordinal:  func(key any) int { return int(key.(K)) },
		Key:      func(ordinal int) any { return K(ordinal) },
	}
}

// Bool returns the Shape of a boolean-backed key type: a two-variant
// enumeration where false has ordinal 0 and true has ordinal 1.
func Bool[K ~bool]() Shape {
	return Shape{
		Kind:     KindEnum,
		Variants: 2,
		Ordinal: func(key any) int {
			if bool(key.(K)) {
				return 1
			}
			return 0
		},
		Key: func(ordinal int) any { return K(ordinal == 1) },
	}
}

// Composite returns the Shape of a key type whose variants each carry one
// nested key. inner lists the nested key shape per variant in declaration
// order; split decomposes a key into (ordinal, nested key) and join inverts
// it. Variants without a payload use a Singleton inner shape, and split
// returns that shape's canonical value for them.
func Composite(inner []Shape, split func(key any) (int, any), join func(ordinal int, inner any) any) Shape {
	if len(inner) == 0 {
		panic("shape: composite must have at least one variant")
	}
	if split == nil || join == nil {
		panic("shape: composite requires split and join")
	}
	return Shape{
		Kind:     KindComposite,
		Variants: len(inner),
		Split:    split,
		Join:     join,
		Inner:    inner,
	}
}

// Hashed returns the Shape of an unbounded key domain addressed by equality
// and hashing. The backing table is a swiss table; capacityHint, if given,
// pre-sizes it for that many entries.
func Hashed[K comparable](capacityHint ...int) Shape {
	hint := 0
	if len(capacityHint) > 0 {
		hint = capacityHint[0]
	}
	return Shape{
		Kind:     KindUnbounded,
		NewTable: func() Table { return newSwissTable[K](hint) },
	}
}

// swissTable adapts a typed swiss.Map to the erased Table contract. The
// swiss map has no clear operation, so Clear reallocates at the original
// capacity hint.
type swissTable[K comparable] struct {
	hint int
	m    *swiss.Map[K, any]
}

func newSwissTable[K comparable](hint int) *swissTable[K] {
	return &swissTable[K]{hint: hint, m: swiss.New[K, any](hint)}
}

func (t *swissTable[K]) Get(key any) (any, bool) {
	return t.m.Get(key.(K))
}

func (t *swissTable[K]) Put(key any, value any) {
	t.m.Put(key.(K), value)
}

func (t *swissTable[K]) Delete(key any) {
	t.m.Delete(key.(K))
}

func (t *swissTable[K]) Len() int {
	return t.m.Len()
}

func (t *swissTable[K]) Clear() {
	t.m = swiss.New[K, any](t.hint)
}

func (t *swissTable[K]) All(yield func(key any, value any) bool) {
	t.m.All(func(k K, v any) bool {
		return yield(k, v)
	})
}
