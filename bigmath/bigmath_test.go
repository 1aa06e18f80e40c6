package bigmath_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform/bigmath"
)

func TestFloor(t *testing.T) {
	ctx := bigmath.New(64)

	testCases := []struct {
		x        float64
		expected float64
	}{
		{x: 0, expected: 0},
		{x: 2.7, expected: 2},
		{x: 5, expected: 5},
		{x: 0.25, expected: 0},
		{x: -0.25, expected: -1},
		{x: -2.7, expected: -3},
		{x: -3, expected: -3},
	}

	for _, tc := range testCases {
		got := ctx.Floor(ctx.Float(tc.x))
		f, _ := got.Float64()
		assert.Equal(t, tc.expected, f, "floor(%v)", tc.x)
		assert.True(t, got.IsInt())
	}
}

func TestFrac(t *testing.T) {
	ctx := bigmath.New(64)

	testCases := []struct {
		x        float64
		expected float64
	}{
		{x: 0, expected: 0},
		{x: 2.75, expected: 0.75},
		{x: -2.75, expected: 0.25},
		{x: -0.25, expected: 0.75},
		{x: 3, expected: 0},
		{x: -3, expected: 0},
	}

	for _, tc := range testCases {
		got := ctx.Frac(ctx.Float(tc.x))
		f, _ := got.Float64()
		assert.Equal(t, tc.expected, f, "frac(%v)", tc.x)
	}
}

// frac stays in [0,1) even when x sits one ulp below an integer and the
// rounded difference would otherwise land exactly on 1.
func TestFracNeverReachesOne(t *testing.T) {
	ctx := bigmath.New(16) // low working precision forces the rounding

	x, err := ctx.Parse("-1e-30")
	assert.NoError(t, err)

	got := ctx.Frac(x)
	one := big.NewFloat(1)
	assert.True(t, got.Cmp(one) < 0, "frac(%v) = %v, want < 1", x, got)
	assert.True(t, got.Sign() >= 0)
}

func TestAbs(t *testing.T) {
	ctx := bigmath.New(64)

	for _, tc := range []struct{ x, expected float64 }{
		{x: -2.5, expected: 2.5},
		{x: 2.5, expected: 2.5},
		{x: 0, expected: 0},
	} {
		f, _ := ctx.Abs(ctx.Float(tc.x)).Float64()
		assert.Equal(t, tc.expected, f)
	}
}

func TestParseRoundsToWorkingPrecision(t *testing.T) {
	ctx := bigmath.New(100)

	v, err := ctx.Parse("0.1")
	assert.NoError(t, err)
	assert.Equal(t, uint(100), v.Prec())

	_, err = ctx.Parse("not a number")
	assert.Error(t, err)
}

func TestModeDefaultsToNearestEven(t *testing.T) {
	ctx := bigmath.New(64)
	assert.Equal(t, big.ToNearestEven, ctx.Mode())

	ctx.SetMode(big.ToZero)
	assert.Equal(t, big.ToZero, ctx.Mode())
	assert.Equal(t, big.ToZero, ctx.Float(0.1).Mode())
}
