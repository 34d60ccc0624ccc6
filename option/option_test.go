package option_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/compos_able_go/option"
)

func TestOption_SomeNone(t *testing.T) {
	s := option.Some(1)
	n := option.None[int]()

	assert.True(t, s.IsSome())
	assert.True(t, n.IsNone())

	v, ok := s.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = n.Unwrap()
	assert.False(t, ok)
}

func TestOption_FromPtr(t *testing.T) {
	x := 5
	assert.True(t, option.FromPtr(&x).IsSome())
	assert.True(t, option.FromPtr[int](nil).IsNone())
}

func TestOption_MapAndChain(t *testing.T) {
	got := option.Map(option.Some(2), strconv.Itoa)
	v, ok := got.Unwrap()
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	none := option.Chain(option.None[int](), func(n int) option.Option[int] {
		t.Fatal("chain callback must not run on None")
		return option.Some(n)
	})
	assert.True(t, none.IsNone())
}

func TestOption_FoldAndGetOrElse(t *testing.T) {
	got := option.Fold(option.Some(3), func() string { return "none" }, strconv.Itoa)
	assert.Equal(t, "3", got)

	assert.Equal(t, -1, option.None[int]().GetOrElse(func() int { return -1 }))
}
