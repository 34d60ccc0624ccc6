// Package state provides the State computation type: a pure function
// from an input state to a value plus the next state. Computations are
// recipes — nothing runs until an initial state is supplied — and
// rerunning one with the same input must be deterministic.
package state

// State threads a value of type S through a computation producing an A.
type State[S, A any] func(S) (A, S)

// Run supplies the initial state and executes the computation.
func (ma State[S, A]) Run(s S) (A, S) { return ma(s) }

// Of lifts a value into a computation that leaves the state untouched.
func Of[S, A any](a A) State[S, A] {
	return func(s S) (A, S) { return a, s }
}

// Get yields the current state as the value, leaving it unchanged.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// Put replaces the state with s, yielding no value.
func Put[S any](s S) State[S, struct{}] {
	return func(S) (struct{}, S) { return struct{}{}, s }
}

// Modify replaces the state with f of the current state, yielding no value.
func Modify[S any](f func(S) S) State[S, struct{}] {
	return func(s S) (struct{}, S) { return struct{}{}, f(s) }
}

// Gets yields f of the current state, leaving the state unchanged.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) { return f(s), s }
}

// Map transforms the produced value. The underlying computation runs
// exactly once and its state transition is untouched.
func Map[S, A, B any](ma State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, s2 := ma(s)
		return f(a), s2
	}
}

// Ap combines two computations: fab runs first, then fa on the state fab
// produced, then the function applies to the argument. The left-to-right
// execution order holds even though the two values are independent.
func Ap[S, A, B any](fab State[S, func(A) B], fa State[S, A]) State[S, B] {
	return func(s S) (B, S) {
		f, s2 := fab(s)
		a, s3 := fa(s2)
		return f(a), s3
	}
}

// Chain sequences a dependent computation: f receives ma's value and its
// result runs on ma's output state.
func Chain[S, A, B any](ma State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, s2 := ma(s)
		return f(a)(s2)
	}
}

// ChainFirst runs f's computation for its state transition but keeps
// ma's value.
func ChainFirst[S, A, B any](ma State[S, A], f func(A) State[S, B]) State[S, A] {
	return Chain(ma, func(a A) State[S, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Flatten collapses a nested computation.
func Flatten[S, A any](mma State[S, State[S, A]]) State[S, A] {
	return Chain(mma, func(ma State[S, A]) State[S, A] { return ma })
}

// ApFirst sequences both computations and keeps the first value.
func ApFirst[S, A, B any](fa State[S, A], fb State[S, B]) State[S, A] {
	return Ap(Map(fa, func(a A) func(B) A {
		return func(B) A { return a }
	}), fb)
}

// ApSecond sequences both computations and keeps the second value.
func ApSecond[S, A, B any](fa State[S, A], fb State[S, B]) State[S, B] {
	return Ap(Map(fa, func(A) func(B) B {
		return func(b B) B { return b }
	}), fb)
}

// Evaluate runs the computation and projects out the value.
func Evaluate[S, A any](ma State[S, A], s S) A {
	a, _ := ma(s)
	return a
}

// Execute runs the computation and projects out the final state.
func Execute[S, A any](ma State[S, A], s S) S {
	_, s2 := ma(s)
	return s2
}
