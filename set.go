package fixedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/comalice/fixedmap/shape"
)

// Set is a presence-only container over the same key shapes as [Map]. It
// is a thin adapter over a Map with an empty value type and adds no
// storage logic of its own, so every Map guarantee — addressing, ordering,
// eager slot allocation, the concurrency contract — applies unchanged.
//
// The zero Set is not usable; construct with [NewSet], [NewSetOf] or
// [CollectSet].
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet returns an empty set for a key type that carries its own shape
// descriptor.
func NewSet[K Key]() *Set[K] {
	return &Set[K]{m: New[K, struct{}]()}
}

// NewSetOf returns an empty set built from an explicit shape descriptor.
func NewSetOf[K any](s shape.Shape) *Set[K] {
	return &Set[K]{m: NewOf[K, struct{}](s)}
}

// CollectSet returns a set populated from a sequence of keys.
func CollectSet[K Key](seq iter.Seq[K]) *Set[K] {
	s := NewSet[K]()
	s.InsertSeq(seq)
	return s
}

// Insert adds key to the set, reporting whether it was newly inserted.
func (s *Set[K]) Insert(key K) bool {
	_, had := s.m.Insert(key, struct{}{})
	return !had
}

// Remove deletes key from the set, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, had := s.m.Remove(key)
	return had
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

// Retain removes every key for which keep returns false.
func (s *Set[K]) Retain(keep func(key K) bool) {
	s.m.Retain(func(key K, _ struct{}) bool {
		return keep(key)
	})
}

// Clear removes every key. Idempotent.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// All returns an iterator over the keys, ordered as described by [Map.All].
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// InsertSeq inserts every key of the sequence into the set.
func (s *Set[K]) InsertSeq(seq iter.Seq[K]) {
	for k := range seq {
		s.Insert(k)
	}
}

// Intersection returns an iterator over the keys present in both sets, in
// this set's iteration order.
func (s *Set[K]) Intersection(other *Set[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.All() {
			if other.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the set.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{m: s.m.Clone()}
}

// String renders the keys in iteration order as {k, ...}.
func (s *Set[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", k)
	}
	b.WriteByte('}')
	return b.String()
}

// SetEqual reports whether two sets contain the same keys, independent of
// insertion order.
func SetEqual[K any](a, b *Set[K]) bool {
	return EqualFunc(a.m, b.m, func(struct{}, struct{}) bool { return true })
}
