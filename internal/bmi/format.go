package bmi

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatValue renders v with exactly two decimals, rounding half away from
// zero on the shortest decimal form of v (so 27.275 gives "27.28").
// NaN and infinities have no decimal form and render as "NaN", "Infinity"
// and "-Infinity".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
