package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToNearest10(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{4, 0},
		{4.99, 0},
		{5, 10},   // tie rounds half away from zero
		{14.9, 10},
		{15, 20},
		{16, 20},
		{123, 120},
		{125, 130},
		{126, 130},
		{7800.4, 7800},
		{-4, 0},
		{-5, -10}, // away from zero on the negative side too
		{-15, -20},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, RoundToNearest10(tt.in), "RoundToNearest10(%v)", tt.in)
	}
}

func TestRoundToNearest10_Properties(t *testing.T) {
	t.Parallel()

	for v := -250.0; v <= 250.0; v += 0.5 {
		got := RoundToNearest10(v)
		assert.Zerof(t, got%10, "RoundToNearest10(%v) = %d is not a multiple of 10", v, got)
		assert.LessOrEqualf(t, math.Abs(float64(got)-v), 5.0, "RoundToNearest10(%v) = %d moved more than 5", v, got)
	}
}

func TestRoundInt64ToNearest10(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500, RoundInt64ToNearest10(1500))
	assert.Equal(t, 1500, RoundInt64ToNearest10(1504))
	assert.Equal(t, 1510, RoundInt64ToNearest10(1505))
	assert.Equal(t, 0, RoundInt64ToNearest10(0))
}

func TestProRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount   int
		units    float64
		baseline int
		want     int
	}{
		{15600, 13, 26, 7800},   // exactly half
		{15600, 25.5, 26, 15300},
		{15000, 26, 26, 15000},  // full attendance is the identity
		{15000, 0, 26, 0},
		{10000, 13, 26, 5000},
		{9997, 13, 26, 5000},    // 4998.5 rounds up to the next 10
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ProRate(tt.amount, tt.units, tt.baseline), "ProRate(%d, %v, %d)", tt.amount, tt.units, tt.baseline)
	}
}
