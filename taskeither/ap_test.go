package taskeither_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/compos_able_go/either"
	"github.com/on-the-ground/compos_able_go/taskeither"
)

func slowRight[A any](d time.Duration, a A) taskeither.TaskEither[string, A] {
	return func(context.Context) either.Either[string, A] {
		time.Sleep(d)
		return either.Right[string](a)
	}
}

func TestAp_CombinesSuccesses(t *testing.T) {
	ctx := context.Background()

	fab := taskeither.Map(taskeither.Right[string](10), func(x int) func(int) int {
		return func(y int) int { return x + y }
	})

	a, _, ok := taskeither.Ap(fab, taskeither.Right[string](5)).Run(ctx).Unwrap()
	require.True(t, ok)
	assert.Equal(t, 15, a)
}

func TestAp_BranchesOverlap(t *testing.T) {
	ctx := context.Background()

	fab := taskeither.Map(slowRight(30*time.Millisecond, 1), func(x int) func(int) int {
		return func(y int) int { return x + y }
	})
	fa := slowRight(30*time.Millisecond, 2)

	start := time.Now()
	a, _, ok := taskeither.Ap(fab, fa).Run(ctx).Unwrap()
	elapsed := time.Since(start)

	require.True(t, ok)
	assert.Equal(t, 3, a)
	if elapsed > 55*time.Millisecond {
		t.Fatalf("branches did not overlap: took %v", elapsed)
	}
}

func TestAp_FabFailureWins(t *testing.T) {
	ctx := context.Background()

	fab := taskeither.Left[func(int) int]("fab failed")
	fa := taskeither.Left[int]("fa failed")

	_, e, ok := taskeither.Ap(fab, fa).Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "fab failed", e)
}

func TestAp_FaFailurePropagates(t *testing.T) {
	ctx := context.Background()

	fab := taskeither.Map(taskeither.Right[string](1), func(x int) func(int) int {
		return func(y int) int { return x + y }
	})

	_, e, ok := taskeither.Ap(fab, taskeither.Left[int]("fa failed")).Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "fa failed", e)
}

func TestApSeq_FaNeverStartsAfterFabFailure(t *testing.T) {
	ctx := context.Background()

	var faStarted atomic.Int32
	fa := taskeither.TaskEither[string, int](func(context.Context) either.Either[string, int] {
		faStarted.Add(1)
		return either.Right[string](1)
	})

	_, e, ok := taskeither.ApSeq(taskeither.Left[func(int) int]("fab failed"), fa).Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "fab failed", e)
	assert.Zero(t, faStarted.Load())
}

func TestApFirstApSecond(t *testing.T) {
	ctx := context.Background()

	a, _, ok := taskeither.ApFirst(taskeither.Right[string]("left"), taskeither.Right[string](2)).Run(ctx).Unwrap()
	require.True(t, ok)
	assert.Equal(t, "left", a)

	b, _, ok := taskeither.ApSecond(taskeither.Right[string]("left"), taskeither.Right[string](2)).Run(ctx).Unwrap()
	require.True(t, ok)
	assert.Equal(t, 2, b)
}
