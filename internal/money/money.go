// Package money holds the fixed-point helpers used for every currency amount.
// Amounts are never represented as float64.
package money

import "github.com/shopspring/decimal"

// Scale is the number of decimal places kept for currency amounts.
const Scale = 2

// Round rounds half away from zero to Scale places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Exact reports whether d carries no more than Scale significant fractional
// digits. Trailing zeros such as "1.500" are allowed.
func Exact(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// Sum adds amounts exactly.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func IsNegative(d decimal.Decimal) bool {
	return d.Sign() < 0
}

func IsPositive(d decimal.Decimal) bool {
	return d.Sign() > 0
}

// Ptr returns a rounded copy suitable for nullable columns.
func Ptr(d decimal.Decimal) *decimal.Decimal {
	r := Round(d)
	return &r
}
