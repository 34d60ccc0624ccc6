package taskeither

import "github.com/on-the-ground/compos_able_go/shared/fn"

// Do-notation helpers, mirroring the state package: each step takes a
// setter closure folding the produced value into the caller's
// accumulator struct.

// BindTo starts an accumulator by wrapping ma's value.
func BindTo[E, A, T any](ma TaskEither[E, A], wrap func(A) T) TaskEither[E, T] {
	return Map(ma, wrap)
}

// Bind sequences a dependent computation and folds its value in via set.
// Failures short-circuit as with Chain.
func Bind[E, T1, A, T2 any](
	scope TaskEither[E, T1],
	f func(T1) TaskEither[E, A],
	set func(T1, A) T2,
) TaskEither[E, T2] {
	return Chain(scope, func(t1 T1) TaskEither[E, T2] {
		return Map(f(t1), func(a A) T2 { return set(t1, a) })
	})
}

// ApS combines an independent computation with the accumulator in
// parallel, per Ap, and folds its value in via set.
func ApS[E, T1, A, T2 any](
	scope TaskEither[E, T1],
	fa TaskEither[E, A],
	set func(T1, A) T2,
) TaskEither[E, T2] {
	return Ap(Map(scope, func(t1 T1) func(A) T2 {
		return func(a A) T2 { return set(t1, a) }
	}), fa)
}

// ApT2 combines two independent computations in parallel and pairs their
// values.
func ApT2[E, A, B any](fa TaskEither[E, A], fb TaskEither[E, B]) TaskEither[E, fn.T2[A, B]] {
	return Ap(Map(fa, func(a A) func(B) fn.T2[A, B] {
		return func(b B) fn.T2[A, B] { return fn.NewT2(a, b) }
	}), fb)
}
