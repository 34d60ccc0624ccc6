package state

import "github.com/on-the-ground/compos_able_go/shared/fn"

// Do-notation helpers. Go has no anonymous record extension, so each
// step takes a setter closure that folds the produced value into the
// caller's accumulator struct. No new state-threading logic lives here;
// everything reduces to Chain, Map, and Ap.

// BindTo starts an accumulator by wrapping ma's value.
func BindTo[S, A, T any](ma State[S, A], wrap func(A) T) State[S, T] {
	return Map(ma, wrap)
}

// Bind sequences a computation that may depend on the accumulator and
// folds its value in via set.
func Bind[S, T1, A, T2 any](
	scope State[S, T1],
	f func(T1) State[S, A],
	set func(T1, A) T2,
) State[S, T2] {
	return Chain(scope, func(t1 T1) State[S, T2] {
		return Map(f(t1), func(a A) T2 { return set(t1, a) })
	})
}

// ApS sequences an independent computation after the accumulator and
// folds its value in via set. Execution order matches Ap: accumulator
// first, then fa.
func ApS[S, T1, A, T2 any](
	scope State[S, T1],
	fa State[S, A],
	set func(T1, A) T2,
) State[S, T2] {
	return Ap(Map(scope, func(t1 T1) func(A) T2 {
		return func(a A) T2 { return set(t1, a) }
	}), fa)
}

// ApT2 runs fa then fb and pairs their values.
func ApT2[S, A, B any](fa State[S, A], fb State[S, B]) State[S, fn.T2[A, B]] {
	return Ap(Map(fa, func(a A) func(B) fn.T2[A, B] {
		return func(b B) fn.T2[A, B] { return fn.NewT2(a, b) }
	}), fb)
}
