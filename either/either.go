// Package either provides a tagged union of a failure value E and a
// success value A. It is the settled payload of the taskeither package
// and the bridge between Go's (value, error) convention and the typed
// failure channel.
package either

// Either holds exactly one of a left (failure) or a right (success) value.
// The zero value is a left holding E's zero value.
type Either[E, A any] struct {
	right   A
	left    E
	isRight bool
}

// Left constructs a failure.
func Left[A, E any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right constructs a success.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a, isRight: true}
}

// FromGoError lifts a conventional (value, error) pair: a non-nil error
// becomes a left, otherwise the value becomes a right.
func FromGoError[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[A](err)
	}
	return Right[error](a)
}

// IsRight reports whether the value is a success.
func (ea Either[E, A]) IsRight() bool { return ea.isRight }

// IsLeft reports whether the value is a failure.
func (ea Either[E, A]) IsLeft() bool { return !ea.isRight }

// Unwrap ejects the union into Go's customary multiple return values.
// Exactly one of the payloads is meaningful; check ok to know which.
func (ea Either[E, A]) Unwrap() (a A, e E, ok bool) {
	return ea.right, ea.left, ea.isRight
}

// GetOrElse returns the success value, or onLeft applied to the failure.
func (ea Either[E, A]) GetOrElse(onLeft func(E) A) A {
	if ea.isRight {
		return ea.right
	}
	return onLeft(ea.left)
}

// Fold collapses the union into a single value by pattern match.
func Fold[E, A, B any](ea Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if ea.isRight {
		return onRight(ea.right)
	}
	return onLeft(ea.left)
}

// Map transforms the success value, passing a failure through untouched.
func Map[E, A, B any](ea Either[E, A], f func(A) B) Either[E, B] {
	if !ea.isRight {
		return Left[B](ea.left)
	}
	return Right[E](f(ea.right))
}

// MapLeft transforms the failure value, passing a success through untouched.
func MapLeft[E, A, G any](ea Either[E, A], f func(E) G) Either[G, A] {
	if ea.isRight {
		return Right[G](ea.right)
	}
	return Left[A](f(ea.left))
}

// BiMap transforms whichever payload is present.
func BiMap[E, A, G, B any](ea Either[E, A], f func(E) G, g func(A) B) Either[G, B] {
	if ea.isRight {
		return Right[G](g(ea.right))
	}
	return Left[B](f(ea.left))
}

// Chain sequences a dependent computation, short-circuiting on failure.
func Chain[E, A, B any](ea Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !ea.isRight {
		return Left[B](ea.left)
	}
	return f(ea.right)
}

// Swap exchanges the two channels.
func Swap[E, A any](ea Either[E, A]) Either[A, E] {
	if ea.isRight {
		return Left[E](ea.right)
	}
	return Right[A](ea.left)
}
