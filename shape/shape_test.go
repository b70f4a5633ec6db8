package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weekday int

const (
	monday weekday = iota
	tuesday
	wednesday
)

func TestEnumShape(t *testing.T) {
	s := Enum[weekday](3)
	assert.Equal(t, KindEnum, s.Kind)
	assert.Equal(t, 3, s.Variants)

	for i, d := range []weekday{monday, tuesday, wednesday} {
		assert.Equal(t, i, s.Ordinal(d))
		assert.Equal(t, d, s.Key(i))
	}
}

func TestEnumShapeRejectsEmptyDomain(t *testing.T) {
	assert.Panics(t, func() { Enum[weekday](0) })
}

func TestBoolShape(t *testing.T) {
	type flag bool
	s := Bool[flag]()
	assert.Equal(t, KindEnum, s.Kind)
	assert.Equal(t, 2, s.Variants)
	assert.Equal(t, 0, s.Ordinal(flag(false)))
	assert.Equal(t, 1, s.Ordinal(flag(true)))
	assert.Equal(t, flag(false), s.Key(0))
	assert.Equal(t, flag(true), s.Key(1))
}

func TestSingletonShape(t *testing.T) {
	s := Singleton("only")
	assert.Equal(t, KindUnit, s.Kind)
	assert.Equal(t, "only", s.Key(0))
}

func TestCompositeShapeValidation(t *testing.T) {
	split := func(key any) (int, any) { return 0, key }
	join := func(_ int, inner any) any { return inner }

	s := Composite([]Shape{Enum[weekday](3)}, split, join)
	assert.Equal(t, KindComposite, s.Kind)
	assert.Equal(t, 1, s.Variants)
	require.Len(t, s.Inner, 1)

	assert.Panics(t, func() { Composite(nil, split, join) })
	assert.Panics(t, func() { Composite([]Shape{Enum[weekday](3)}, nil, join) })
	assert.Panics(t, func() { Composite([]Shape{Enum[weekday](3)}, split, nil) })
}

func TestHashedShapeTable(t *testing.T) {
	s := Hashed[string](4)
	assert.Equal(t, KindUnbounded, s.Kind)

	tbl := s.NewTable()
	assert.Equal(t, 0, tbl.Len())

	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Put("a", 3)
	assert.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = tbl.Get("missing")
	assert.False(t, ok)

	tbl.Delete("a")
	_, ok = tbl.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())

	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	tbl.Put("c", 4)
	assert.Equal(t, 1, tbl.Len())
}

func TestHashedShapeTablesAreIndependent(t *testing.T) {
	s := Hashed[int]()
	a := s.NewTable()
	b := s.NewTable()
	a.Put(1, "x")
	assert.Equal(t, 0, b.Len())
}

func TestHashedTableAll(t *testing.T) {
	tbl := Hashed[int]().NewTable()
	for i := 0; i < 10; i++ {
		tbl.Put(i, i*i)
	}

	seen := map[any]any{}
	tbl.All(func(k, v any) bool {
		seen[k] = v
		return true
	})
	require.Len(t, seen, 10)
	assert.Equal(t, 49, seen[7])

	// Early exit stops the enumeration.
	n := 0
	tbl.All(func(any, any) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unit", KindUnit.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "composite", KindComposite.String())
	assert.Equal(t, "unbounded", KindUnbounded.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
