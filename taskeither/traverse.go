package taskeither

import (
	"context"
	"sync"

	"github.com/on-the-ground/compos_able_go/either"
)

// TraverseSliceWithIndex maps each element through f and runs the
// resulting computations in parallel: every goroutine launches without
// waiting for its predecessors. The traversal never bails early — it
// waits for all elements to settle, then reduces to the first failure in
// index order, or to the ordered slice of values when all succeed.
func TraverseSliceWithIndex[E, A, B any](as []A, f func(int, A) TaskEither[E, B]) TaskEither[E, []B] {
	return func(ctx context.Context) either.Either[E, []B] {
		results := make([]either.Either[E, B], len(as))
		var wg sync.WaitGroup
		wg.Add(len(as))
		for i, a := range as {
			go func(i int, a A) {
				defer wg.Done()
				results[i] = f(i, a)(ctx)
			}(i, a)
		}
		wg.Wait()

		bs := make([]B, len(as))
		for i, res := range results {
			b, e, ok := res.Unwrap()
			if !ok {
				return either.Left[[]B](e)
			}
			bs[i] = b
		}
		return either.Right[E](bs)
	}
}

// TraverseSlice is the parallel traversal without the index.
func TraverseSlice[E, A, B any](as []A, f func(A) TaskEither[E, B]) TaskEither[E, []B] {
	return TraverseSliceWithIndex(as, func(_ int, a A) TaskEither[E, B] {
		return f(a)
	})
}

// SequenceSlice runs already-built computations in parallel and collects
// their values in input order.
func SequenceSlice[E, A any](mas []TaskEither[E, A]) TaskEither[E, []A] {
	return TraverseSliceWithIndex(mas, func(_ int, ma TaskEither[E, A]) TaskEither[E, A] {
		return ma
	})
}

// TraverseSeqSliceWithIndex is the strictly sequential traversal: each
// element's computation starts only after the previous one settled, and
// the first failure bails out — later elements never start.
func TraverseSeqSliceWithIndex[E, A, B any](as []A, f func(int, A) TaskEither[E, B]) TaskEither[E, []B] {
	return func(ctx context.Context) either.Either[E, []B] {
		bs := make([]B, len(as))
		for i, a := range as {
			b, e, ok := f(i, a)(ctx).Unwrap()
			if !ok {
				return either.Left[[]B](e)
			}
			bs[i] = b
		}
		return either.Right[E](bs)
	}
}

// TraverseSeqSlice is the sequential traversal without the index.
func TraverseSeqSlice[E, A, B any](as []A, f func(A) TaskEither[E, B]) TaskEither[E, []B] {
	return TraverseSeqSliceWithIndex(as, func(_ int, a A) TaskEither[E, B] {
		return f(a)
	})
}

// SequenceSeqSlice runs already-built computations one after another,
// bailing at the first failure.
func SequenceSeqSlice[E, A any](mas []TaskEither[E, A]) TaskEither[E, []A] {
	return TraverseSeqSliceWithIndex(mas, func(_ int, ma TaskEither[E, A]) TaskEither[E, A] {
		return ma
	})
}
