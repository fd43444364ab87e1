package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// mean returns the arithmetic mean, 0 for an empty slice
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationStdDev divides by n, not n-1
func populationStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mu := mean(values)
	var sumSquares float64
	for _, v := range values {
		d := v - mu
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// exactExponent is below the smallest binary exponent of a float64, so
// NewFromFloatWithExponent keeps every digit of the stored value.
const exactExponent = -1100

// round rounds the exact binary value of a float, resolving true ties to the even
// digit. 2.675 is stored as 2.67499999... and rounds to 2.67; 0.125 rounds to 0.12.
// Non-finite values are returned unchanged.
func round(value float64, places int32) float64 {
	if !isFinite(value) {
		return value
	}
	return decimal.NewFromFloatWithExponent(value, exactExponent).RoundBank(places).InexactFloat64()
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
