// Package fn provides the small function utilities the combinator
// packages and their tests lean on.
package fn

// Unit is the informationless type, aliased so signatures stay readable.
type Unit = struct{}

// Identity returns its argument unchanged.
func Identity[A any](a A) A { return a }

// Constant returns a function that ignores its argument and always
// returns a.
func Constant[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Compose is left-to-right composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}
