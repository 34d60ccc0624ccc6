package taskeither

import (
	"context"

	"github.com/on-the-ground/compos_able_go/either"
	"github.com/on-the-ground/compos_able_go/semigroup"
)

// ApValidation is the error-accumulating apply: both computations run in
// parallel as with Ap, but when both settle to failures the two failure
// values concatenate through sg instead of the second being dropped.
// Callers use it to collect every validation error rather than only the
// first.
func ApValidation[E, A, B any](
	sg semigroup.Semigroup[E],
	fab TaskEither[E, func(A) B],
	fa TaskEither[E, A],
) TaskEither[E, B] {
	return func(ctx context.Context) either.Either[E, B] {
		done := make(chan either.Either[E, A], 1)
		go func() {
			done <- fa(ctx)
		}()

		fres := fab(ctx)
		ares := <-done

		f, fe, fok := fres.Unwrap()
		a, ae, aok := ares.Unwrap()
		switch {
		case fok && aok:
			return either.Right[E](f(a))
		case !fok && !aok:
			return either.Left[B](sg.Concat(fe, ae))
		case !fok:
			return either.Left[B](fe)
		default:
			return either.Left[B](ae)
		}
	}
}

// AltValidation is the error-accumulating alternative: when first fails,
// the fallback runs, and if it fails too the two failures concatenate
// through sg.
func AltValidation[E, A any](
	sg semigroup.Semigroup[E],
	first TaskEither[E, A],
	onAlt func() TaskEither[E, A],
) TaskEither[E, A] {
	return func(ctx context.Context) either.Either[E, A] {
		res := first(ctx)
		a, e1, ok := res.Unwrap()
		if ok {
			return either.Right[E](a)
		}
		a, e2, ok := onAlt()(ctx).Unwrap()
		if ok {
			return either.Right[E](a)
		}
		return either.Left[A](sg.Concat(e1, e2))
	}
}
