package fn

// T2 is a 2-tuple. The tuple-building combinators use it to accumulate
// the values of two sequenced computations in one dot-chainable value.
type T2[A, B any] struct {
	first  A
	second B
}

// NewT2 constructs a T2. The fields are unexported, so this is the only
// way in.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{first: a, second: b}
}

// First returns the first element.
func (t T2[A, B]) First() A { return t.first }

// Second returns the second element.
func (t T2[A, B]) Second() B { return t.second }

// Unpack ejects both elements as the multiple return values customary
// in Go.
func (t T2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}
