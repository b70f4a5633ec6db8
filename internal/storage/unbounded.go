package storage

import "github.com/comalice/fixedmap/shape"

// unbounded backs key domains with no finite enumeration. It delegates to
// the hash table supplied by the shape descriptor, storing *V so that
// pointer access and in-place mutation work the same way they do for the
// array-backed shapes. Unlike those shapes the table has no fixed
// capacity; inserts may grow it, and iteration order is whatever the table
// produces.
type unbounded[V any] struct {
	newTable func() shape.Table
	table    shape.Table
}

func newUnbounded[V any](s shape.Shape) *unbounded[V] {
	return &unbounded[V]{newTable: s.NewTable, table: s.NewTable()}
}

func (u *unbounded[V]) Get(key any) (V, bool) {
	if p, ok := u.table.Get(key); ok {
		return *p.(*V), true
	}
	var zero V
	return zero, false
}

func (u *unbounded[V]) Ptr(key any) *V {
	if p, ok := u.table.Get(key); ok {
		return p.(*V)
	}
	return nil
}

func (u *unbounded[V]) PtrOrInsert(key any, init func() V) *V {
	if p, ok := u.table.Get(key); ok {
		return p.(*V)
	}
	p := new(V)
	*p = init()
	u.table.Put(key, p)
	return p
}

func (u *unbounded[V]) Insert(key any, value V) (V, bool) {
	if p, ok := u.table.Get(key); ok {
		pv := p.(*V)
		old := *pv
		*pv = value
		return old, true
	}
	p := new(V)
	*p = value
	u.table.Put(key, p)
	var zero V
	return zero, false
}

func (u *unbounded[V]) Remove(key any) (V, bool) {
	if p, ok := u.table.Get(key); ok {
		u.table.Delete(key)
		return *p.(*V), true
	}
	var zero V
	return zero, false
}

func (u *unbounded[V]) Contains(key any) bool {
	_, ok := u.table.Get(key)
	return ok
}

// Retain collects doomed keys first; the table cannot be mutated while its
// enumeration runs.
func (u *unbounded[V]) Retain(keep func(key any, value *V) bool) {
	var doomed []any
	u.table.All(func(key any, p any) bool {
		if !keep(key, p.(*V)) {
			doomed = append(doomed, key)
		}
		return true
	})
	for _, key := range doomed {
		u.table.Delete(key)
	}
}

func (u *unbounded[V]) Clear() {
	u.table.Clear()
}

func (u *unbounded[V]) Len() int {
	return u.table.Len()
}

func (u *unbounded[V]) All(yield func(key any, value *V) bool) bool {
	done := true
	u.table.All(func(key any, p any) bool {
		done = yield(key, p.(*V))
		return done
	})
	return done
}

// Clone rebuilds rather than copies: values are re-boxed so the clone's
// pointers are independent of the original's.
func (u *unbounded[V]) Clone() Storage[V] {
	c := &unbounded[V]{newTable: u.newTable, table: u.newTable()}
	u.table.All(func(key any, p any) bool {
		boxed := new(V)
		*boxed = *p.(*V)
		c.table.Put(key, boxed)
		return true
	})
	return c
}
