package storage

import "github.com/comalice/fixedmap/shape"

// singleton backs unit-shaped keys: a key type with exactly one value needs
// no discriminant, so the whole storage is one optional cell. The key
// argument to every operation is ignored — there is only one slot it could
// address — and iteration yields the shape's canonical key value.
type singleton[V any] struct {
	key  any
	cell cell[V]
}

// cell is one optional value slot. Occupancy is tracked explicitly so that
// zero values of V are storable.
type cell[V any] struct {
	value V
	some  bool
}

func newSingleton[V any](s shape.Shape) *singleton[V] {
	return &singleton[V]{key: s.Key(0)}
}

func (s *singleton[V]) Get(any) (V, bool) {
	return s.cell.value, s.cell.some
}

func (s *singleton[V]) Ptr(any) *V {
	if !s.cell.some {
		return nil
	}
	return &s.cell.value
}

func (s *singleton[V]) PtrOrInsert(_ any, init func() V) *V {
	if !s.cell.some {
		s.cell.value = init()
		s.cell.some = true
	}
	return &s.cell.value
}

func (s *singleton[V]) Insert(_ any, value V) (V, bool) {
	old, had := s.cell.value, s.cell.some
	s.cell.value = value
	s.cell.some = true
	return old, had
}

func (s *singleton[V]) Remove(any) (V, bool) {
	old, had := s.cell.value, s.cell.some
	s.cell = cell[V]{}
	return old, had
}

func (s *singleton[V]) Contains(any) bool {
	return s.cell.some
}

func (s *singleton[V]) Retain(keep func(key any, value *V) bool) {
	if s.cell.some && !keep(s.key, &s.cell.value) {
		s.cell = cell[V]{}
	}
}

func (s *singleton[V]) Clear() {
	s.cell = cell[V]{}
}

func (s *singleton[V]) Len() int {
	if s.cell.some {
		return 1
	}
	return 0
}

func (s *singleton[V]) All(yield func(key any, value *V) bool) bool {
	if !s.cell.some {
		return true
	}
	return yield(s.key, &s.cell.value)
}

func (s *singleton[V]) Clone() Storage[V] {
	c := *s
	return &c
}
