package bigmath_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform/bigmath"
)

func TestExpZeroIsExactlyOne(t *testing.T) {
	ctx := bigmath.New(200)
	got := ctx.Exp(ctx.Float(0))
	assert.Equal(t, 0, got.Cmp(big.NewFloat(1)))
}

// Reference values to 30 significant digits at 128 bits of working precision.
func TestExpHighPrecision(t *testing.T) {
	ctx := bigmath.New(128)

	testCases := []struct {
		x        float64
		expected string
	}{
		{x: 1, expected: "2.718281828459045235360287471352"},
		{x: -1, expected: "0.3678794411714423215955237701614"},
		{x: 2, expected: "7.389056098930650227230427460575"},
	}

	tol, err := ctx.Parse("1e-28")
	assert.NoError(t, err)

	for _, tc := range testCases {
		got := ctx.Exp(ctx.Float(tc.x))
		want, err := ctx.Parse(tc.expected)
		assert.NoError(t, err)

		diff := new(big.Float).SetPrec(128).Sub(got, want)
		diff.Abs(diff)
		// The reference strings are truncated at 30 digits, so compare the
		// relative error against the value's own magnitude.
		diff.Quo(diff, want)
		assert.True(t, diff.Cmp(tol) < 0, "exp(%v) = %v, want %v", tc.x, got, want)
	}
}

// Exp agrees with the host exp across the float64 range.
func TestExpAgainstHostExp(t *testing.T) {
	ctx := bigmath.New(64)

	for _, x := range []float64{-20, -5, -1, -0.1, 0.25, 0.5, 1, 3, 10, 20, 100} {
		got, _ := ctx.Exp(ctx.Float(x)).Float64()
		want := math.Exp(x)
		assert.InDelta(t, 1.0, got/want, 1e-12, "exp(%v)", x)
	}
}

// Large negative arguments underflow towards zero gracefully instead of
// failing: the result stays positive with a very small exponent.
func TestExpLargeNegative(t *testing.T) {
	ctx := bigmath.New(64)

	got := ctx.Exp(ctx.Float(-10000))
	assert.Equal(t, 1, got.Sign())
	// e**-10000 == 2**(-10000/ln 2), binary exponent about -14426
	assert.Less(t, got.MantExp(nil), -14000)
}

func TestExpInfinities(t *testing.T) {
	ctx := bigmath.New(64)

	pos := ctx.Exp(big.NewFloat(0).SetInf(false))
	assert.True(t, pos.IsInf())
	assert.False(t, pos.Signbit())

	neg := ctx.Exp(big.NewFloat(0).SetInf(true))
	assert.Equal(t, 0, neg.Sign())
}

func TestExpResultPrecision(t *testing.T) {
	ctx := bigmath.New(300)
	got := ctx.Exp(ctx.Float(1.5))
	assert.Equal(t, uint(300), got.Prec())
}
