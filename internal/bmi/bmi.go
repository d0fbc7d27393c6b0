// Package bmi computes Body Mass Index from feet/inches and kilograms and
// classifies the result.
//
// Everything here is pure: no I/O, no logging, no shared state. Callers own
// the raw field values and whatever they display.
package bmi

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	metersPerFoot = 0.3048
	metersPerInch = 0.0254
)

// Category is a BMI band.
type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Lower bounds of the bands above Underweight. Each band is half-open.
const (
	NormalThreshold     = 18.5
	OverweightThreshold = 25.0
	ObeseThreshold      = 30.0
)

// Categories lists every band in ascending threshold order.
func Categories() []Category {
	return []Category{Underweight, Normal, Overweight, Obese}
}

// Result is a successful computation.
type Result struct {
	BMI      string   `json:"bmi"` // exactly two decimals
	Category Category `json:"category"`
}

// Engine runs the computation. The zero value is permissive: text that is
// present but not a number is not rejected and propagates as NaN.
type Engine struct {
	// StrictNumbers rejects non-numeric or non-finite input with
	// ErrNonNumeric before any arithmetic.
	StrictNumbers bool
}

// Compute validates the three raw strings and returns the BMI and category.
// The first failing check wins: missing field, non-numeric (strict only),
// height, then weight.
func (e Engine) Compute(feet, inches, weight string) (Result, error) {
	if feet == "" || inches == "" || weight == "" {
		return Result{}, ErrMissingField
	}

	ft, in, kg := ParseInput(feet), ParseInput(inches), ParseInput(weight)
	if e.StrictNumbers && !(finite(ft) && finite(in) && finite(kg)) {
		return Result{}, ErrNonNumeric
	}

	height := HeightInMeters(ft, in)
	if !heightPositive(ft, in, height) {
		return Result{}, ErrNonPositiveHeight
	}
	if kg <= 0 {
		return Result{}, ErrNonPositiveWeight
	}

	value := kg / (height * height)
	return Result{
		BMI:      FormatValue(value),
		Category: Classify(value),
	}, nil
}

// Compute is Engine{}.Compute.
func Compute(feet, inches, weight string) (Result, error) {
	return Engine{}.Compute(feet, inches, weight)
}

// ParseInput parses a decimal float. Surrounding whitespace is ignored.
// Unparseable text yields NaN; out-of-range magnitudes yield ±Inf.
func ParseInput(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// HeightInMeters converts feet and inches to meters.
func HeightInMeters(feet, inches float64) float64 {
	return feet*metersPerFoot + inches*metersPerInch
}

// Classify maps a BMI value to its band. NaN compares false against every
// threshold and lands in Obese.
func Classify(value float64) Category {
	switch {
	case value < NormalThreshold:
		return Underweight
	case value < OverweightThreshold:
		return Normal
	case value < ObeseThreshold:
		return Overweight
	default:
		return Obese
	}
}

var (
	decMetersPerFoot = decimal.RequireFromString("0.3048")
	decMetersPerInch = decimal.RequireFromString("0.0254")
)

// heightPositive applies the height check to the entered decimal values, so
// 1 ft -12 in is exactly zero rather than a float residue like 5.55e-17.
// The float height must also be positive since it is the divisor. NaN and
// infinities have no decimal form and use the float comparison alone.
func heightPositive(ft, in, height float64) bool {
	if height <= 0 {
		return false
	}
	if !finite(ft) || !finite(in) {
		return true
	}
	exact := decimal.NewFromFloat(ft).Mul(decMetersPerFoot).
		Add(decimal.NewFromFloat(in).Mul(decMetersPerInch))
	return exact.IsPositive()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
