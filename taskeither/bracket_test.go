package taskeither_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/compos_able_go/either"
	"github.com/on-the-ground/compos_able_go/taskeither"
)

func TestBracket_ReleaseRunsOnUseFailure(t *testing.T) {
	ctx := context.Background()

	var released atomic.Int32
	out := taskeither.Bracket(
		taskeither.Right[string]("conn"),
		func(string) taskeither.TaskEither[string, int] {
			return taskeither.Left[int]("use blew up")
		},
		func(_ string, outcome either.Either[string, int]) taskeither.TaskEither[string, struct{}] {
			released.Add(1)
			assert.True(t, outcome.IsLeft(), "release must see use's outcome")
			return taskeither.Right[string](struct{}{})
		},
	)

	_, e, ok := out.Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "use blew up", e)
	assert.Equal(t, int32(1), released.Load(), "release must run exactly once")
}

func TestBracket_SuccessPath(t *testing.T) {
	ctx := context.Background()

	var released atomic.Int32
	out := taskeither.Bracket(
		taskeither.Right[string]("conn"),
		func(conn string) taskeither.TaskEither[string, string] {
			return taskeither.Right[string](conn + ": used")
		},
		func(string, either.Either[string, string]) taskeither.TaskEither[string, struct{}] {
			released.Add(1)
			return taskeither.Right[string](struct{}{})
		},
	)

	a, _, ok := out.Run(ctx).Unwrap()
	require.True(t, ok)
	assert.Equal(t, "conn: used", a)
	assert.Equal(t, int32(1), released.Load())
}

func TestBracket_ReleaseFailureWins(t *testing.T) {
	ctx := context.Background()

	out := taskeither.Bracket(
		taskeither.Right[string]("conn"),
		func(string) taskeither.TaskEither[string, int] {
			return taskeither.Right[string](1)
		},
		func(string, either.Either[string, int]) taskeither.TaskEither[string, struct{}] {
			return taskeither.Left[struct{}]("release failed")
		},
	)

	_, e, ok := out.Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "release failed", e)
}

func TestBracket_NoReleaseWhenAcquireFails(t *testing.T) {
	ctx := context.Background()

	var released, used atomic.Int32
	out := taskeither.Bracket(
		taskeither.Left[string]("no resource"),
		func(string) taskeither.TaskEither[string, int] {
			used.Add(1)
			return taskeither.Right[string](1)
		},
		func(string, either.Either[string, int]) taskeither.TaskEither[string, struct{}] {
			released.Add(1)
			return taskeither.Right[string](struct{}{})
		},
	)

	_, e, ok := out.Run(ctx).Unwrap()
	require.False(t, ok)
	assert.Equal(t, "no resource", e)
	assert.Zero(t, used.Load())
	assert.Zero(t, released.Load())
}
