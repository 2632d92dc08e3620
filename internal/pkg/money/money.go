package money

import (
	"github.com/shopspring/decimal"
)

// All amounts in the system are integers in the base currency unit and every
// figure that reaches a pay slip is a multiple of 10.

var ten = decimal.NewFromInt(10)

// RoundToNearest10 rounds v to the nearest multiple of 10. Ties (values
// ending in exactly .5 after division by 10) round half away from zero, so
// 15 -> 20 and -15 -> -20.
func RoundToNearest10(v float64) int {
	return int(decimal.NewFromFloat(v).Div(ten).Round(0).Mul(ten).IntPart())
}

// RoundInt64ToNearest10 is RoundToNearest10 for already-integral amounts.
func RoundInt64ToNearest10(v int64) int {
	return int(decimal.NewFromInt(v).Div(ten).Round(0).Mul(ten).IntPart())
}

// ProRate scales amount by units/baseline and rounds to the nearest 10.
// This is the salary pro-ration rule: amount/baseline gives the per-day
// value, units is the (possibly fractional) attendance earned.
func ProRate(amount int, units float64, baseline int) int {
	scaled := decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromFloat(units)).
		Div(decimal.NewFromInt(int64(baseline)))
	v, _ := scaled.Float64()
	return RoundToNearest10(v)
}
