package number

import (
	"github.com/govalues/decimal"

	"github.com/on-the-ground/compos_able_go/semigroup"
)

// DecimalCompare orders two decimals.
func DecimalCompare(x, y decimal.Decimal) int { return x.Cmp(y) }

// DecimalEquals reports numeric equality regardless of scale.
func DecimalEquals(x, y decimal.Decimal) bool { return x.Cmp(y) == 0 }

// SemigroupDecimalSum adds two decimals. An addition that overflows the
// decimal range keeps the left operand, so callers folding untrusted
// magnitudes should bound their inputs.
func SemigroupDecimalSum() semigroup.Semigroup[decimal.Decimal] {
	return func(x, y decimal.Decimal) decimal.Decimal {
		sum, err := x.Add(y)
		if err != nil {
			return x
		}
		return sum
	}
}

// SemigroupDecimalMin keeps the smaller decimal.
func SemigroupDecimalMin() semigroup.Semigroup[decimal.Decimal] {
	return func(x, y decimal.Decimal) decimal.Decimal {
		if y.Cmp(x) < 0 {
			return y
		}
		return x
	}
}

// SemigroupDecimalMax keeps the larger decimal.
func SemigroupDecimalMax() semigroup.Semigroup[decimal.Decimal] {
	return func(x, y decimal.Decimal) decimal.Decimal {
		if y.Cmp(x) > 0 {
			return y
		}
		return x
	}
}

// MonoidDecimalSum is decimal addition with identity zero.
func MonoidDecimalSum() semigroup.Monoid[decimal.Decimal] {
	return semigroup.Monoid[decimal.Decimal]{
		Semigroup: SemigroupDecimalSum(),
		Empty:     decimal.MustNew(0, 0),
	}
}
