package fixedmap

// Entry is a handle over a single map slot, obtained from [Map.Entry]. It
// supports the insert-if-absent-then-mutate flows that would otherwise
// take a Get/Insert round trip:
//
//	counts := fixedmap.New[Part, int]()
//	*counts.Entry(PartB).OrDefault()++
//	counts.Entry(PartC).AndModify(func(v *int) { *v *= 2 }).OrInsert(1)
//
// An Entry addresses its slot lazily; it is valid for as long as the map
// it came from, but like iterators it must not be held across unrelated
// mutations of the map.
type Entry[K, V any] struct {
	m   *Map[K, V]
	key K
}

// Key returns the key this entry addresses.
func (e Entry[K, V]) Key() K {
	return e.key
}

// OrInsert occupies the slot with value if it is vacant and returns a
// pointer to the slot's value.
func (e Entry[K, V]) OrInsert(value V) *V {
	return e.m.storage.PtrOrInsert(e.key, func() V { return value })
}

// OrInsertWith occupies the slot with init() if it is vacant — init is not
// called otherwise — and returns a pointer to the slot's value.
func (e Entry[K, V]) OrInsertWith(init func() V) *V {
	return e.m.storage.PtrOrInsert(e.key, init)
}

// OrInsertWithKey is like [Entry.OrInsertWith] with the key passed to the
// default function.
func (e Entry[K, V]) OrInsertWithKey(init func(K) V) *V {
	return e.m.storage.PtrOrInsert(e.key, func() V { return init(e.key) })
}

// OrDefault occupies the slot with the zero value of V if it is vacant and
// returns a pointer to the slot's value.
func (e Entry[K, V]) OrDefault() *V {
	return e.m.storage.PtrOrInsert(e.key, func() V { var zero V; return zero })
}

// AndModify applies f to the value if the slot is occupied, then returns
// the entry for chaining.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if p := e.m.storage.Ptr(e.key); p != nil {
		f(p)
	}
	return e
}
