// Package option provides an optional value: a presence tag plus payload.
package option

// Option holds a value of type A or nothing. The zero value is None.
type Option[A any] struct {
	value A
	some  bool
}

// Some constructs a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

// None constructs an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (oa Option[A]) IsSome() bool { return oa.some }

// IsNone reports whether the value is absent.
func (oa Option[A]) IsNone() bool { return !oa.some }

// Unwrap ejects the payload and the presence tag.
func (oa Option[A]) Unwrap() (A, bool) {
	return oa.value, oa.some
}

// GetOrElse returns the payload, or onNone's result when absent.
func (oa Option[A]) GetOrElse(onNone func() A) A {
	if oa.some {
		return oa.value
	}
	return onNone()
}

// Fold collapses the option into a single value by pattern match.
func Fold[A, B any](oa Option[A], onNone func() B, onSome func(A) B) B {
	if oa.some {
		return onSome(oa.value)
	}
	return onNone()
}

// Map transforms the payload when present.
func Map[A, B any](oa Option[A], f func(A) B) Option[B] {
	if !oa.some {
		return None[B]()
	}
	return Some(f(oa.value))
}

// Chain sequences a dependent optional computation.
func Chain[A, B any](oa Option[A], f func(A) Option[B]) Option[B] {
	if !oa.some {
		return None[B]()
	}
	return f(oa.value)
}
