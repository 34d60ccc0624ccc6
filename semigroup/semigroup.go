// Package semigroup provides associative combine operations and monoids
// (semigroups with an identity element). The error-accumulating taskeither
// instances consume these to concatenate failures instead of dropping all
// but the first.
package semigroup

import (
	"go.uber.org/multierr"
)

// Semigroup is an associative combine operation over A.
type Semigroup[A any] func(x, y A) A

// Concat combines two values.
func (sg Semigroup[A]) Concat(x, y A) A { return sg(x, y) }

// Monoid is a semigroup with an identity element.
type Monoid[A any] struct {
	Semigroup[A]
	Empty A
}

// First keeps the left operand.
func First[A any]() Semigroup[A] {
	return func(x, _ A) A { return x }
}

// Last keeps the right operand.
func Last[A any]() Semigroup[A] {
	return func(_, y A) A { return y }
}

// Reverse flips the operand order of sg.
func Reverse[A any](sg Semigroup[A]) Semigroup[A] {
	return func(x, y A) A { return sg(y, x) }
}

// Errors combines two errors into one multi-error, keeping both messages.
// Combining with nil returns the other operand unchanged.
func Errors() Semigroup[error] {
	return multierr.Append
}

// Slices appends the right slice after the left, preserving element order.
func Slices[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Semigroup: func(x, y []A) []A {
			out := make([]A, 0, len(x)+len(y))
			out = append(out, x...)
			return append(out, y...)
		},
		Empty: nil,
	}
}

// Strings concatenates left-to-right.
func Strings() Monoid[string] {
	return Monoid[string]{
		Semigroup: func(x, y string) string { return x + y },
		Empty:     "",
	}
}

// ConcatAll folds as over the monoid, left to right, starting from Empty.
func ConcatAll[A any](m Monoid[A], as []A) A {
	acc := m.Empty
	for _, a := range as {
		acc = m.Concat(acc, a)
	}
	return acc
}
