package option

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/somnon/pkg/somnon"
)

func TestVariants(t *testing.T) {
	t.Parallel()

	assert.True(t, Som(1).IsSom())
	assert.False(t, Som(1).IsNon())
	assert.True(t, Non[int]().IsNon())
	assert.False(t, Non[int]().IsSom())

	var zero Option[int]
	assert.Equal(t, Non[int](), zero)
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	assert.Equal(t, Som(1), FromPair(m["a"], true))
	v, ok := m["b"]
	assert.Equal(t, Non[int](), FromPair(v, ok))
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", Som("x").Unwrap())

	err := somnon.Catch(func() { Non[string]().Unwrap() })
	require.Error(t, err)
	assert.ErrorIs(t, err, somnon.ErrUnwrap)
}

func TestExpect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Som(2).Expect("unused"))
	require.PanicsWithError(t, "user id is required", func() {
		Non[int]().Expect("user id is required")
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Som(1).UnwrapOr(5))
	assert.Equal(t, 5, Non[int]().UnwrapOr(5))
}

func TestUnwrapOrElse_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	supplier := func() int { calls++; return 5 }

	assert.Equal(t, 1, Som(1).UnwrapOrElse(supplier))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 5, Non[int]().UnwrapOrElse(supplier))
	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Som("4"), Map(Som(4), strconv.Itoa))

	called := false
	out := Map(Non[int](), func(v int) string { called = true; return "" })
	assert.False(t, called)
	assert.Equal(t, Non[string](), out)
}

func TestMapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4", MapOr(Som(4), strconv.Itoa, "none"))
	assert.Equal(t, "none", MapOr(Non[int](), strconv.Itoa, "none"))
}

func TestMapOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	supplier := func() string { calls++; return "none" }

	assert.Equal(t, "4", MapOrElse(Som(4), strconv.Itoa, supplier))
	assert.Equal(t, 0, calls)
	assert.Equal(t, "none", MapOrElse(Non[int](), strconv.Itoa, supplier))
	assert.Equal(t, 1, calls)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, Som(4), Som(4).Filter(even))
	assert.Equal(t, Non[int](), Som(5).Filter(even))

	called := false
	assert.Equal(t, Non[int](), Non[int]().Filter(func(int) bool { called = true; return true }))
	assert.False(t, called)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Som(1), Flatten(Som(Som(1))))
	assert.Equal(t, Non[int](), Flatten(Som(Non[int]())))
	assert.Equal(t, Non[int](), Flatten(Non[Option[int]]()))
}

func TestZip(t *testing.T) {
	t.Parallel()

	a, b, n := Som(1), Som("x"), Non[string]()

	assert.Equal(t, Som(Pair[int, string]{First: 1, Second: "x"}), Zip(a, b))
	assert.Equal(t, Non[Pair[int, string]](), Zip(a, n))
	assert.Equal(t, Non[Pair[int, string]](), Zip(Non[int](), b))
}

func TestZipWith(t *testing.T) {
	t.Parallel()

	repeat := func(n int, s string) string {
		out := ""
		for i := 0; i < n; i++ {
			out += s
		}
		return out
	}

	assert.Equal(t, Som("xxx"), ZipWith(Som(3), Som("x"), repeat))
	assert.Equal(t, Non[string](), ZipWith(Som(3), Non[string](), repeat))
	assert.Equal(t, Non[string](), ZipWith(Non[int](), Som("x"), repeat))
}

func TestAnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Som("x"), And(Som(1), Som("x")))
	assert.Equal(t, Non[string](), And(Som(1), Non[string]()))
	assert.Equal(t, Non[string](), And(Non[int](), Som("x")))
}

func TestOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Som(1), Som(1).Or(Som(2)))
	assert.Equal(t, Som(1), Som(1).Or(Non[int]()))
	assert.Equal(t, Som(2), Non[int]().Or(Som(2)))
	assert.Equal(t, Non[int](), Non[int]().Or(Non[int]()))
}

func TestXor(t *testing.T) {
	t.Parallel()

	a, b, n := Som(1), Som(2), Non[int]()

	assert.Equal(t, Som(1), a.Xor(n))
	assert.Equal(t, Som(2), n.Xor(b))
	assert.Equal(t, Non[int](), a.Xor(b))
	assert.Equal(t, Non[int](), n.Xor(n))
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parse := func(s string) Option[int] {
		v, err := strconv.Atoi(s)
		return FromPair(v, err == nil)
	}

	assert.Equal(t, Som(12), AndThen(Som("12"), parse))
	assert.Equal(t, Non[int](), AndThen(Som("x"), parse))

	called := false
	out := AndThen(Non[string](), func(s string) Option[int] { called = true; return parse(s) })
	assert.False(t, called)
	assert.Equal(t, Non[int](), out)
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func() Option[int] { calls++; return Som(9) }

	assert.Equal(t, Som(1), Som(1).OrElse(fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, Som(9), Non[int]().OrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Som(5)", fmt.Sprint(Som(5)))
	assert.Equal(t, "Non", fmt.Sprint(Non[int]()))
	assert.Equal(t, "Som((1, x))", fmt.Sprint(Zip(Som(1), Som("x"))))
}
