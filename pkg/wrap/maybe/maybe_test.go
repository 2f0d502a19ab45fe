package maybe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOption_Basics(t *testing.T) {
	t.Parallel()

	some := Some(10)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())

	none := None[int]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.True(t, none.IsNone())

	var zero Option[string]
	assert.True(t, zero.IsNone(), "zero value must be absent")
}

func TestOption_PtrRoundTrip(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPtr[int](nil).IsNone())
	assert.Nil(t, None[int]().Ptr())

	n := 3
	opt := FromPtr(&n)
	n = 4
	v, ok := opt.Get()
	require.True(t, ok)
	assert.Equal(t, 3, v, "FromPtr copies the pointee")

	p := opt.Ptr()
	require.NotNil(t, p)
	*p = 99
	v, _ = opt.Get()
	assert.Equal(t, 3, v, "Ptr returns a copy")
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	assert.Equal(t, Some(1), FromPair(m["a"], true))
	got, ok := m["b"]
	assert.True(t, FromPair(got, ok).IsNone())
}

func TestOption_OrElseAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))
	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(2.0), Map(Some(1), func(v int) float64 { return 2.0 * float64(v) }))

	called := false
	got := Map(None[int](), func(v int) float64 {
		called = true
		return 0
	})
	assert.True(t, got.IsNone())
	assert.False(t, called)
}

func TestFlatMapSome(t *testing.T) {
	t.Parallel()

	mapped := FlatMap(Some(1), func(v int) Option[float32] {
		return Some(2.0 * float32(v))
	})
	assert.Equal(t, Some[float32](2.0), mapped)
}

func TestFlatMapSome_ToNone(t *testing.T) {
	t.Parallel()

	mapped := FlatMap(Some(1), func(int) Option[float32] { return None[float32]() })
	assert.True(t, mapped.IsNone())
}

func TestFlatMapNone(t *testing.T) {
	t.Parallel()

	mapped := FlatMap(None[int](), func(v int) Option[float32] {
		t.Fatalf("mapping called on None")
		return None[float32]()
	})
	assert.True(t, mapped.IsNone())
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var seen []int
	ForEach(Some(1), func(v int) { seen = append(seen, v) })
	ForEach(None[int](), func(v int) { seen = append(seen, v) })

	assert.Equal(t, []int{1}, seen)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Filter(Some(1), func(int) bool { return true }))
	assert.True(t, Filter(Some(1), func(int) bool { return false }).IsNone())

	called := false
	got := Filter(None[int](), func(int) bool {
		called = true
		return true
	})
	assert.True(t, got.IsNone())
	assert.False(t, called)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Flatten(Some(Some(1))))
	assert.True(t, Flatten(Some(None[int]())).IsNone())
	assert.True(t, Flatten(None[Option[int]]()).IsNone())
}

func TestRecover(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Recover(Some(1), 5))
	assert.Equal(t, 5, Recover(None[int](), 5))
}
