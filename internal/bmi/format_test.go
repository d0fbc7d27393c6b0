package bmi

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// formatFloat renders v the way a user would type it.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{24.170242147568278, "24.17"},
		{14.9498755787635, "14.95"},
		{25, "25.00"},
		{0, "0.00"},
		{27.275, "27.28"},
		{0.125, "0.13"},
		{1.005, "1.01"},
		{18.499, "18.50"},
		{123456.789, "123456.79"},
		{-2.5, "-2.50"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in), "FormatValue(%v)", tt.in)
	}
}

func TestFormatValue_DisplayVsCategory(t *testing.T) {
	// Rounding is display-only; the band uses the unrounded value.
	v := 18.499
	assert.Equal(t, "18.50", FormatValue(v))
	assert.Equal(t, Underweight, Classify(v))
}
