package bigmath

import "math/big"

// Exp returns e**x rounded to the working precision.
//
// The argument is halved k times until |x|/2^k < 1/2, the Maclaurin series
// for exp is summed at extended precision, and the result is squared k times
// back up. Each squaring costs about one bit of accuracy, so the series runs
// with k plus a fixed number of guard bits. Large negative arguments
// underflow gracefully towards zero within big.Float's exponent range.
func (c *Ctx) Exp(x *big.Float) *big.Float {
	z := c.newFloat()
	if x.Sign() == 0 {
		return z.SetInt64(1)
	}
	if x.IsInf() {
		if x.Signbit() {
			return z // exp(-Inf) = 0
		}
		return z.SetInf(false)
	}

	// x = mant * 2**e with 0.5 <= |mant| < 1, so |x| < 0.5 once e <= -1.
	halvings := 0
	if e := x.MantExp(nil); e > -1 {
		halvings = e + 1
	}
	prec := c.prec + uint(halvings) + 64

	r := new(big.Float).SetPrec(prec).Set(x)
	if halvings > 0 {
		r.SetMantExp(r, -halvings) // r = x * 2**-k
	}

	// exp(r) = sum r^n / n!
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	nf := new(big.Float).SetPrec(prec)
	for n := int64(1); ; n++ {
		term.Mul(term, r)
		term.Quo(term, nf.SetInt64(n))
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(prec)-1 {
			break
		}
	}

	for i := 0; i < halvings; i++ {
		sum.Mul(sum, sum)
	}
	return z.Set(sum)
}
