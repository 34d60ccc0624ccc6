package taskeither

import (
	"context"

	"github.com/on-the-ground/compos_able_go/either"
)

// Ap combines two independent computations. fa launches on its own
// goroutine while fab runs on the caller's, so no ordering holds between
// their starts; both run to settlement. If both succeed the function
// applies to the argument; otherwise the first failure scanning fab then
// fa wins.
func Ap[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return func(ctx context.Context) either.Either[E, B] {
		done := make(chan either.Either[E, A], 1)
		go func() {
			done <- fa(ctx)
		}()

		fres := fab(ctx)
		ares := <-done

		f, e, ok := fres.Unwrap()
		if !ok {
			return either.Left[B](e)
		}
		return either.Map(ares, f)
	}
}

// ApSeq is the strictly ordered variant: fab settles before fa starts,
// and a failure from fab means fa never runs.
func ApSeq[E, A, B any](fab TaskEither[E, func(A) B], fa TaskEither[E, A]) TaskEither[E, B] {
	return Chain(fab, func(f func(A) B) TaskEither[E, B] {
		return Map(fa, f)
	})
}

// ApFirst combines both computations in parallel and keeps the first
// value.
func ApFirst[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond combines both computations in parallel and keeps the second
// value.
func ApSecond[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}
