package fixedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/comalice/fixedmap/internal/storage"
	"github.com/comalice/fixedmap/shape"
)

// Map is a fixed-capacity associative container from K to V. Its backing
// representation is selected from K's shape descriptor when the map is
// created and fixed for the map's lifetime: array cells for unit and
// enumeration keys, nested storages for composite keys, a hash table for
// unbounded keys.
//
// The zero Map is not usable; construct with [New], [NewOf] or [Collect].
// A Map is not safe for concurrent use.
type Map[K, V any] struct {
	storage storage.Storage[V]
}

// New returns an empty map for a key type that carries its own shape
// descriptor. For unit, enumeration and composite shapes every slot —
// recursively including nested sub-storages — is allocated up front in its
// unoccupied state.
func New[K Key, V any]() *Map[K, V] {
	var k K
	return NewOf[K, V](k.KeyShape())
}

// NewOf returns an empty map built from an explicit shape descriptor. The
// descriptor must describe K's structure and must not change afterwards.
func NewOf[K, V any](s shape.Shape) *Map[K, V] {
	return &Map[K, V]{storage: storage.New[V](s)}
}

// Collect returns a map populated from a sequence of key-value pairs.
// Later pairs overwrite earlier ones with the same key.
func Collect[K Key, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.InsertSeq(seq)
	return m
}

// Get returns the value stored at key, if any. For unit and enumeration
// keys this is a direct slot read by ordinal; for composite keys the outer
// ordinal selects a sub-storage and the lookup recurses; for unbounded
// keys it is a hash lookup.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.storage.Get(key)
}

// GetPtr returns a pointer to the value stored at key, or nil if the slot
// is unoccupied. The pointer may be used to mutate the value in place and
// stays valid until the key is removed or the map is cleared.
func (m *Map[K, V]) GetPtr(key K) *V {
	return m.storage.Ptr(key)
}

// Insert places value at key, returning the previous occupant if the slot
// was already occupied. Replacement, not accumulation: a slot holds at
// most one value.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	return m.storage.Insert(key, value)
}

// Remove vacates the slot at key and returns its prior value. Removing an
// absent key is a no-op that reports false.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.storage.Remove(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.storage.Contains(key)
}

// Retain removes every entry for which keep returns false.
func (m *Map[K, V]) Retain(keep func(key K, value V) bool) {
	m.storage.Retain(func(key any, value *V) bool {
		return keep(key.(K), *value)
	})
}

// Clear vacates every slot, releasing the stored values. The fixed
// skeleton is kept; for unbounded keys the backing table is reset.
// Idempotent.
func (m *Map[K, V]) Clear() {
	m.storage.Clear()
}

// Len returns the number of occupied slots.
func (m *Map[K, V]) Len() int {
	return m.storage.Len()
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.storage.Len() == 0
}

// Entry returns a handle over the slot at key for insert-if-absent and
// mutate-in-place flows.
func (m *Map[K, V]) Entry(key K) Entry[K, V] {
	return Entry[K, V]{m: m, key: key}
}

// All returns an iterator over the occupied (key, value) pairs. Unit and
// enumeration keys iterate in variant declaration order; composite keys in
// lexicographic (outer ordinal, inner order); unbounded keys in
// unspecified order. The sequence is restartable, and the map must not be
// mutated while it is being consumed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.storage.All(func(key any, value *V) bool {
			return yield(key.(K), *value)
		})
	}
}

// Keys returns an iterator over the occupied keys, ordered as in [Map.All].
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.storage.All(func(key any, _ *V) bool {
			return yield(key.(K))
		})
	}
}

// Values returns an iterator over the stored values, ordered as in [Map.All].
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.storage.All(func(_ any, value *V) bool {
			return yield(*value)
		})
	}
}

// InsertSeq inserts every pair of the sequence into the map.
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Clone returns a deep copy of the map's storage tree. Values are copied
// by assignment; pointer-typed values share their referents.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{storage: m.storage.Clone()}
}

// String renders the occupied entries in iteration order as {k: v, ...}.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// Equal reports whether two maps hold the same keys with equal values.
// Occupancy is compared key by key, so for unbounded shapes the result is
// independent of insertion and iteration order.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like [Equal] but compares values with eq, allowing maps
// with different value types.
func EqualFunc[K any, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		if w, ok := b.Get(k); !ok || !eq(v, w) {
			return false
		}
	}
	return true
}
