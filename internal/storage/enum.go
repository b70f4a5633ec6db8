package storage

import "github.com/comalice/fixedmap/shape"

// enum backs enumeration-shaped keys: a fixed array of optional cells,
// one per variant, addressed directly by the variant's ordinal. Lookup is
// a bounds-checked slice index, never a search. The occupied count is
// maintained incrementally so Len stays O(1).
type enum[V any] struct {
	ordinal func(key any) int
	key     func(ordinal int) any
	cells   []cell[V]
	count   int
}

func newEnum[V any](s shape.Shape) *enum[V] {
	return &enum[V]{
		ordinal: s.Ordinal,
		key:     s.Key,
		cells:   make([]cell[V], s.Variants),
	}
}

func (e *enum[V]) Get(key any) (V, bool) {
	c := e.cells[e.ordinal(key)]
	return c.value, c.some
}

func (e *enum[V]) Ptr(key any) *V {
	c := &e.cells[e.ordinal(key)]
	if !c.some {
		return nil
	}
	return &c.value
}

func (e *enum[V]) PtrOrInsert(key any, init func() V) *V {
	c := &e.cells[e.ordinal(key)]
	if !c.some {
		c.value = init()
		c.some = true
		e.count++
	}
	return &c.value
}

func (e *enum[V]) Insert(key any, value V) (V, bool) {
	c := &e.cells[e.ordinal(key)]
	old, had := c.value, c.some
	c.value = value
	c.some = true
	if !had {
		e.count++
	}
	return old, had
}

func (e *enum[V]) Remove(key any) (V, bool) {
	c := &e.cells[e.ordinal(key)]
	old, had := c.value, c.some
	if had {
		*c = cell[V]{}
		e.count--
	}
	return old, had
}

func (e *enum[V]) Contains(key any) bool {
	return e.cells[e.ordinal(key)].some
}

func (e *enum[V]) Retain(keep func(key any, value *V) bool) {
	for i := range e.cells {
		c := &e.cells[i]
		if c.some && !keep(e.key(i), &c.value) {
			*c = cell[V]{}
			e.count--
		}
	}
}

func (e *enum[V]) Clear() {
	for i := range e.cells {
		e.cells[i] = cell[V]{}
	}
	e.count = 0
}

func (e *enum[V]) Len() int {
	return e.count
}

// All visits occupied cells in ordinal order, which is the declaration
// order of the key type's variants.
func (e *enum[V]) All(yield func(key any, value *V) bool) bool {
	for i := range e.cells {
		c := &e.cells[i]
		if c.some && !yield(e.key(i), &c.value) {
			return false
		}
	}
	return true
}

func (e *enum[V]) Clone() Storage[V] {
	c := &enum[V]{
		ordinal: e.ordinal,
		key:     e.key,
		cells:   make([]cell[V], len(e.cells)),
		count:   e.count,
	}
	copy(c.cells, e.cells)
	return c
}
