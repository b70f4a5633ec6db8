// Package fixedmap provides map and set containers whose backing storage
// is chosen from the shape of the key type instead of from runtime
// hashing. Keys drawn from small closed domains — enumerations, booleans,
// composite keys nesting other keys, single-value types — are stored in
// fixed arrays addressed directly by variant ordinal, so lookup, insertion
// and iteration cost about as much as indexing a slice. Keys from open
// domains (integers, strings) fall back to a hash table and keep the same
// API.
//
// A key type declares its shape by implementing [Key]:
//
//	type Part int
//
//	const (
//		PartA Part = iota
//		PartB
//		PartC
//		PartD
//	)
//
//	func (Part) KeyShape() shape.Shape { return shape.Enum[Part](4) }
//
//	m := fixedmap.New[Part, int]()
//	m.Insert(PartB, 10)
//	m.Insert(PartD, 20)
//
// Iteration over array-backed shapes is deterministic and follows the
// declaration order of the key's variants, regardless of insertion order.
//
// Containers are single-owner and not internally synchronized; wrap them
// in a lock for concurrent use. Mutating a container while ranging over
// one of its iterators is not supported.
package fixedmap
