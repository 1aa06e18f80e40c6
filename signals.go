// Package waveform provides periodic and sigmoidal signal functions (square,
// triangle and sawtooth waves, a unit triangle pulse, and the logistic
// sigmoid) evaluated at arbitrary real time values under an
// arbitrary-precision numeric context.
//
// Each function is pure and stateless: the value at time t depends only on t,
// the waveform parameters and the working precision of the supplied Context.
// The default Context implementation lives in the bigmath subpackage; a
// host-precision (float64) mirror of the same family lives in mathfuncs.
package waveform

import "math/big"

// Context is the arbitrary-precision arithmetic capability the signal
// functions evaluate under. Implementations round every result to Prec bits.
// A Context is shared, never mutated by the signal functions, and must not
// have its precision changed concurrently with evaluation.
type Context interface {
	// Floor returns the largest integer value not greater than x.
	Floor(x *big.Float) *big.Float
	// Frac returns x - floor(x), always in [0,1) regardless of the sign of x.
	Frac(x *big.Float) *big.Float
	// Abs returns the absolute value of x.
	Abs(x *big.Float) *big.Float
	// Exp returns e**x.
	Exp(x *big.Float) *big.Float
	// Prec returns the working precision in bits.
	Prec() uint
}

// Exact small constants shared by the signal functions. These are never
// mutated; big.Float arithmetic reads its operands only.
var (
	one     = big.NewFloat(1)
	half    = big.NewFloat(0.5)
	quarter = big.NewFloat(0.25)
)

// SquareWave returns the square wave y = A*(-1)^floor(2t/P) at time t, where
// A is the amplitude and P is the period. The value is +A for t in
// [0, P/2) within each period and -A for t in [P/2, P), for negative t
// included: the sign is decided by the parity of floor(2t/P), not by any
// symmetry assumption. Returns ErrZeroPeriod if P is zero.
func SquareWave(ctx Context, t, amplitude, period *big.Float) (*big.Float, error) {
	if period.Sign() == 0 {
		return nil, ErrZeroPeriod
	}

	x := new(big.Float).SetPrec(ctx.Prec()).Quo(t, period)
	x.Add(x, x) // 2t/P, doubling is exact

	// The floor result is an exact integer, so conversion to big.Int is
	// lossless and Bit(0) gives the parity even for negative values.
	n, _ := ctx.Floor(x).Int(nil)

	y := new(big.Float).SetPrec(ctx.Prec()).Set(amplitude)
	if n.Bit(0) == 1 {
		y.Neg(y)
	}
	return y, nil
}

// TriangleWave returns the triangle wave
// y = 2A*(1/2 - |1 - 2*frac(t/P + 1/4)|) at time t, where A is the amplitude
// and P is the period. The wave is continuous everywhere, crosses zero
// ascending at t=0, peaks at +A at t=P/4 and at -A at 3P/4. Returns
// ErrZeroPeriod if P is zero.
func TriangleWave(ctx Context, t, amplitude, period *big.Float) (*big.Float, error) {
	if period.Sign() == 0 {
		return nil, ErrZeroPeriod
	}
	prec := ctx.Prec()

	x := new(big.Float).SetPrec(prec).Quo(t, period)
	x.Add(x, quarter)
	f := ctx.Frac(x)
	f.Add(f, f) // 2*frac(t/P + 1/4)

	inner := new(big.Float).SetPrec(prec).Sub(one, f)
	y := new(big.Float).SetPrec(prec).Sub(half, ctx.Abs(inner))
	y.Mul(y, amplitude)
	y.Add(y, y)
	return y, nil
}

// SawtoothWave returns the sawtooth wave y = A*frac(t/P) at time t, where A
// is the amplitude and P is the period. The ramp rises linearly from 0
// towards A over each period interval [kP, (k+1)P) and drops back to exactly
// 0 at every period boundary (the interval is right-open, so frac of an exact
// multiple of P is 0, not 1). Returns ErrZeroPeriod if P is zero.
func SawtoothWave(ctx Context, t, amplitude, period *big.Float) (*big.Float, error) {
	if period.Sign() == 0 {
		return nil, ErrZeroPeriod
	}

	x := new(big.Float).SetPrec(ctx.Prec()).Quo(t, period)
	return new(big.Float).SetPrec(ctx.Prec()).Mul(amplitude, ctx.Frac(x)), nil
}

// UnitTrianglePulse returns the single (non-periodic) triangular pulse
// y = A*(1 - |t|) for |t| < 1 and exactly 0 for |t| >= 1, boundaries
// included. The formula needs only comparison, subtraction and absolute
// value, which big.Float provides directly, so no Context is required; the
// result carries the larger precision of the two operands.
func UnitTrianglePulse(t, amplitude *big.Float) *big.Float {
	prec := t.Prec()
	if amplitude.Prec() > prec {
		prec = amplitude.Prec()
	}
	a := new(big.Float).SetPrec(prec).Abs(t)
	if a.Cmp(one) >= 0 {
		return new(big.Float).SetPrec(prec)
	}
	y := new(big.Float).SetPrec(prec).Sub(one, a)
	return y.Mul(y, amplitude)
}

// SigmoidWave returns the logistic curve y = A / (1 + exp(-t)) at time t,
// monotonically increasing from 0 towards A and passing through A/2 at t=0.
// There are no error conditions for finite t; saturation for large |t|
// follows the Context's own overflow and underflow behaviour.
func SigmoidWave(ctx Context, t, amplitude *big.Float) *big.Float {
	prec := ctx.Prec()
	nt := new(big.Float).SetPrec(prec).Neg(t)
	den := new(big.Float).SetPrec(prec).Add(ctx.Exp(nt), one)
	return new(big.Float).SetPrec(prec).Quo(amplitude, den)
}
