// Package bigmath implements the waveform numeric context on math/big,
// supplying floor, fractional part, absolute value and exponential at a
// configurable binary working precision and rounding mode.
package bigmath

import "math/big"

var one = big.NewFloat(1)

// Ctx evaluates the context primitives at a fixed working precision. It is
// safe for concurrent use as long as the precision and rounding mode are not
// changed while evaluations are in flight. The zero value is not usable; use
// New.
type Ctx struct {
	prec uint
	mode big.RoundingMode
}

// New returns a context with the given working precision in bits and
// round-to-nearest-even rounding.
func New(prec uint) *Ctx {
	return &Ctx{prec: prec, mode: big.ToNearestEven}
}

// SetMode sets the rounding mode used for inexact results and returns the
// context for chaining.
func (c *Ctx) SetMode(mode big.RoundingMode) *Ctx {
	c.mode = mode
	return c
}

// Prec returns the working precision in bits.
func (c *Ctx) Prec() uint { return c.prec }

// Mode returns the rounding mode.
func (c *Ctx) Mode() big.RoundingMode { return c.mode }

func (c *Ctx) newFloat() *big.Float {
	return new(big.Float).SetPrec(c.prec).SetMode(c.mode)
}

// Float returns f rounded to the working precision.
func (c *Ctx) Float(f float64) *big.Float {
	return c.newFloat().SetFloat64(f)
}

// Parse returns the decimal number in s rounded to the working precision.
func (c *Ctx) Parse(s string) (*big.Float, error) {
	v, _, err := big.ParseFloat(s, 10, c.prec, c.mode)
	return v, err
}

// Floor returns the largest integer value not greater than x.
func (c *Ctx) Floor(x *big.Float) *big.Float {
	z := c.newFloat()
	if x.IsInf() || x.IsInt() {
		return z.Set(x)
	}
	i, _ := x.Int(nil) // truncates toward zero
	z.SetInt(i)
	if x.Sign() < 0 {
		z.Sub(z, one)
	}
	return z
}

// Frac returns x - floor(x), always in [0,1) regardless of the sign of x.
func (c *Ctx) Frac(x *big.Float) *big.Float {
	z := c.newFloat().Sub(x, c.Floor(x))
	// For x just below an integer the rounded difference can land exactly on
	// 1; wrap it to 0, the value at the start of the next interval.
	if z.Cmp(one) >= 0 {
		z.Sub(z, one)
	}
	return z
}

// Abs returns the absolute value of x rounded to the working precision.
func (c *Ctx) Abs(x *big.Float) *big.Float {
	return c.newFloat().Abs(x)
}
