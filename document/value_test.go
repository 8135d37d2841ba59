package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilValueIsNull(t *testing.T) {
	var v *Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
	_, ok := v.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, v.Len())
	assert.Nil(t, v.Keys())
}

func TestMappingPreservesOrder(t *testing.T) {
	m := Mapping()
	m.Set("b", Int(1))
	m.Set("a", Int(2))
	m.Set("c", Int(3))
	m.Set("a", String("replaced"))

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	got, ok := m.StrField("a")
	require.True(t, ok)
	assert.Equal(t, "replaced", got)

	m.Delete("b")
	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	m.Delete("missing")
	assert.Equal(t, 2, m.Len())
}

func TestTypedAccessors(t *testing.T) {
	m := Mapping()
	m.Set("name", String("pet"))
	m.Set("flag", Bool(true))
	m.Set("count", Number("12"))
	m.Set("list", Strings("a", "b"))
	m.Set("obj", Mapping())

	t.Run("matching shapes", func(t *testing.T) {
		s, ok := m.StrField("name")
		assert.True(t, ok)
		assert.Equal(t, "pet", s)

		b, ok := m.BoolField("flag")
		assert.True(t, ok)
		assert.True(t, b)

		f, ok := m.MustGet(t, "count").Float()
		assert.True(t, ok)
		assert.InDelta(t, 12.0, f, 0)

		items, ok := m.SeqField("list")
		assert.True(t, ok)
		assert.Len(t, items, 2)

		ss, ok := m.StringsField("list")
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, ss)

		_, ok = m.MapField("obj")
		assert.True(t, ok)
	})

	t.Run("mismatched shapes", func(t *testing.T) {
		_, ok := m.StrField("flag")
		assert.False(t, ok)
		_, ok = m.MapField("name")
		assert.False(t, ok)
		_, ok = m.SeqField("obj")
		assert.False(t, ok)
		_, ok = m.StrField("missing")
		assert.False(t, ok)
	})

	t.Run("scalar text", func(t *testing.T) {
		s, ok := m.MustGet(t, "count").Scalar()
		assert.True(t, ok)
		assert.Equal(t, "12", s)
		_, ok = m.Scalar()
		assert.False(t, ok)
	})
}

func TestSetOnNonMappingIsNoop(t *testing.T) {
	s := String("x")
	s.Set("k", Null())
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, 0, s.Len())
}

func TestCloneKeepsSharingAndCycles(t *testing.T) {
	shared := Mapping()
	shared.Set("type", String("string"))
	root := Mapping()
	root.Set("a", shared)
	root.Set("b", shared)
	root.Set("self", root)

	c := root.Clone()
	require.NotSame(t, root, c)
	a, _ := c.Get("a")
	b, _ := c.Get("b")
	assert.Same(t, a, b)
	assert.NotSame(t, shared, a)
	self, _ := c.Get("self")
	assert.Same(t, c, self)

	a.Set("type", String("integer"))
	orig, _ := shared.StrField("type")
	assert.Equal(t, "string", orig)
}

func TestAssignKeepsIdentity(t *testing.T) {
	dst := Mapping()
	src := Mapping()
	src.Set("x", Int(1))
	dst.Assign(src)
	assert.Equal(t, []string{"x"}, dst.Keys())
	src.Set("y", Int(2))
	assert.Equal(t, 1, dst.Len())
}

func TestScalarKey(t *testing.T) {
	assert.Equal(t, String("a").ScalarKey(), String("a").ScalarKey())
	assert.NotEqual(t, String("1").ScalarKey(), Number("1").ScalarKey())
	assert.Empty(t, Mapping().ScalarKey())
}

func (v *Value) MustGet(t *testing.T, key string) *Value {
	t.Helper()
	got, ok := v.Get(key)
	require.True(t, ok, "missing key %q", key)
	return got
}
