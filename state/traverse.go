package state

// TraverseSliceWithIndex maps each element through f and sequences the
// resulting computations strictly in index order, threading the state
// from one to the next. The loop is iterative so arbitrarily long inputs
// cannot overflow the stack.
func TraverseSliceWithIndex[S, A, B any](as []A, f func(int, A) State[S, B]) State[S, []B] {
	return func(s S) ([]B, S) {
		bs := make([]B, len(as))
		for i, a := range as {
			bs[i], s = f(i, a)(s)
		}
		return bs, s
	}
}

// TraverseSlice is TraverseSliceWithIndex without the index.
func TraverseSlice[S, A, B any](as []A, f func(A) State[S, B]) State[S, []B] {
	return TraverseSliceWithIndex(as, func(_ int, a A) State[S, B] {
		return f(a)
	})
}

// SequenceSlice runs already-built computations in order and collects
// their values.
func SequenceSlice[S, A any](mas []State[S, A]) State[S, []A] {
	return TraverseSliceWithIndex(mas, func(_ int, ma State[S, A]) State[S, A] {
		return ma
	})
}
