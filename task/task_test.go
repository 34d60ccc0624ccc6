package task_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/compos_able_go/task"
)

func TestTask_OfMapChain(t *testing.T) {
	ctx := context.Background()

	ta := task.Of(21)
	tb := task.Map(ta, func(n int) int { return n * 2 })
	tc := task.Chain(tb, func(n int) task.Task[string] {
		return task.Of(strconv.Itoa(n))
	})

	assert.Equal(t, "42", tc.Run(ctx))
}

func TestTask_ColdReinvocation(t *testing.T) {
	ctx := context.Background()

	count := 0
	ta := task.Task[int](func(context.Context) int {
		count++
		return count
	})

	assert.Equal(t, 1, ta.Run(ctx))
	assert.Equal(t, 2, ta.Run(ctx))
}

func TestTask_ApPar_RunsBothBranches(t *testing.T) {
	ctx := context.Background()

	slow := func(d time.Duration, n int) task.Task[int] {
		return func(context.Context) int {
			time.Sleep(d)
			return n
		}
	}

	fab := task.Map(slow(30*time.Millisecond, 10), func(x int) func(int) int {
		return func(y int) int { return x + y }
	})
	fa := slow(30*time.Millisecond, 5)

	start := time.Now()
	got := task.ApPar(fab, fa).Run(ctx)
	elapsed := time.Since(start)

	assert.Equal(t, 15, got)
	if elapsed > 55*time.Millisecond {
		t.Fatalf("branches did not overlap: took %v", elapsed)
	}
}
