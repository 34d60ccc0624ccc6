// Package number provides ordering, equality, and combine instances for
// numeric types.
package number

import (
	"golang.org/x/exp/constraints"

	"github.com/on-the-ground/compos_able_go/semigroup"
)

// Number covers the built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Compare returns -1, 0, or +1 per the natural order of T.
func Compare[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// Equals reports natural equality.
func Equals[T comparable](x, y T) bool { return x == y }

// SemigroupSum combines by addition.
func SemigroupSum[T Number]() semigroup.Semigroup[T] {
	return func(x, y T) T { return x + y }
}

// SemigroupProduct combines by multiplication.
func SemigroupProduct[T Number]() semigroup.Semigroup[T] {
	return func(x, y T) T { return x * y }
}

// SemigroupMin keeps the smaller operand.
func SemigroupMin[T constraints.Ordered]() semigroup.Semigroup[T] {
	return func(x, y T) T {
		if y < x {
			return y
		}
		return x
	}
}

// SemigroupMax keeps the larger operand.
func SemigroupMax[T constraints.Ordered]() semigroup.Semigroup[T] {
	return func(x, y T) T {
		if y > x {
			return y
		}
		return x
	}
}

// MonoidSum is addition with identity 0.
func MonoidSum[T Number]() semigroup.Monoid[T] {
	return semigroup.Monoid[T]{Semigroup: SemigroupSum[T](), Empty: 0}
}

// MonoidProduct is multiplication with identity 1.
func MonoidProduct[T Number]() semigroup.Monoid[T] {
	return semigroup.Monoid[T]{Semigroup: SemigroupProduct[T](), Empty: 1}
}
