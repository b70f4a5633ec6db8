package storage

import "github.com/comalice/fixedmap/shape"

// composite backs keys whose variants each carry a nested key: a fixed
// array of nested storages, one per outer variant, each built for that
// variant's payload shape. Operations split the key into (outer ordinal,
// inner key), index the child directly, and recurse; iteration rebuilds
// full keys with the shape's join callback.
//
// Children are created eagerly alongside the parent and owned exclusively
// by it, so the storage tree mirrors the key type's declaration tree and
// tears down without cycles.
type composite[V any] struct {
	split    func(key any) (int, any)
	join     func(ordinal int, inner any) any
	children []Storage[V]
	count    int
}

func newComposite[V any](s shape.Shape) *composite[V] {
	children := make([]Storage[V], s.Variants)
	for i, inner := range s.Inner {
		children[i] = New[V](inner)
	}
	return &composite[V]{
		split:    s.Split,
		join:     s.Join,
		children: children,
	}
}

func (c *composite[V]) Get(key any) (V, bool) {
	ord, inner := c.split(key)
	return c.children[ord].Get(inner)
}

func (c *composite[V]) Ptr(key any) *V {
	ord, inner := c.split(key)
	return c.children[ord].Ptr(inner)
}

func (c *composite[V]) PtrOrInsert(key any, init func() V) *V {
	ord, inner := c.split(key)
	child := c.children[ord]
	before := child.Len()
	p := child.PtrOrInsert(inner, init)
	c.count += child.Len() - before
	return p
}

func (c *composite[V]) Insert(key any, value V) (V, bool) {
	ord, inner := c.split(key)
	old, had := c.children[ord].Insert(inner, value)
	if !had {
		c.count++
	}
	return old, had
}

func (c *composite[V]) Remove(key any) (V, bool) {
	ord, inner := c.split(key)
	old, had := c.children[ord].Remove(inner)
	if had {
		c.count--
	}
	return old, had
}

func (c *composite[V]) Contains(key any) bool {
	ord, inner := c.split(key)
	return c.children[ord].Contains(inner)
}

func (c *composite[V]) Retain(keep func(key any, value *V) bool) {
	for i, child := range c.children {
		before := child.Len()
		child.Retain(func(inner any, value *V) bool {
			return keep(c.join(i, inner), value)
		})
		c.count -= before - child.Len()
	}
}

func (c *composite[V]) Clear() {
	for _, child := range c.children {
		child.Clear()
	}
	c.count = 0
}

func (c *composite[V]) Len() int {
	return c.count
}

// All visits children in outer-ordinal order, draining each child's own
// iteration order before moving on: lexicographic over (outer, inner).
func (c *composite[V]) All(yield func(key any, value *V) bool) bool {
	for i, child := range c.children {
		ok := child.All(func(inner any, value *V) bool {
			return yield(c.join(i, inner), value)
		})
		if !ok {
			return false
		}
	}
	return true
}

func (c *composite[V]) Clone() Storage[V] {
	children := make([]Storage[V], len(c.children))
	for i, child := range c.children {
		children[i] = child.Clone()
	}
	return &composite[V]{
		split:    c.split,
		join:     c.join,
		children: children,
		count:    c.count,
	}
}
