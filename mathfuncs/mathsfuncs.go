// Package mathfuncs provides the host-precision (float64) signal function
// family: the same closed forms as the waveform package, evaluated with
// native double arithmetic for callers that do not need arbitrary precision.
package mathfuncs

import (
	"errors"
	"math"

	"github.com/teknico/sigourney/fast"
)

// A signal function y=f(t,A,T). Takes amplitude, A, and period, T, as inputs
// and returns the value of the function at time, t. Aperiodic functions
// ignore T.
type SignalFunction func(t, A, T float64) (float64, error)

// ErrZeroPeriod is returned by the periodic functions when T is zero.
var ErrZeroPeriod = errors.New("period must be nonzero")

// A map between string name and signal function pairs
var signalFunctions = map[string]SignalFunction{
	"square":   SquareWave,
	"triangle": TriangleWave,
	"sawtooth": SawtoothWave,
	"unit_triangle": func(t, A, _ float64) (float64, error) {
		return UnitTrianglePulse(t, A), nil
	},
	"sigmoid": func(t, A, _ float64) (float64, error) {
		return SigmoidWave(t, A), nil
	},
	"sine":   sineWave,
	"cosine": cosineWave,
}

func GetSignalFunctionNames() []string {
	names := make([]string, 0, len(signalFunctions))
	for name := range signalFunctions {
		names = append(names, name)
	}
	return names
}

// Returns the named signal function.
func GetSignalFunctionFromName(name string) (SignalFunction, error) {
	signalFunc, ok := signalFunctions[name]
	if !ok {
		return nil, errors.New("signal function not found")
	}

	return signalFunc, nil
}

// Returns a square wave y=A*(-1)^floor(2t/T) where A is the amplitude,
// T is the period, and t is elapsed time. The parity of floor(2t/T) decides
// the sign, for negative t included.
func SquareWave(t, A, T float64) (float64, error) {
	if T == 0 {
		return 0, ErrZeroPeriod
	}
	if math.Mod(math.Floor(2*t/T), 2) != 0 {
		return -A, nil
	}
	return A, nil
}

// Returns a triangle wave y=2A*(1/2 - |1 - 2*frac(t/T + 1/4)|) where A is
// the amplitude, T is the period, and t is elapsed time. The wave crosses
// zero ascending at t=0 and peaks at +A at t=T/4.
func TriangleWave(t, A, T float64) (float64, error) {
	if T == 0 {
		return 0, ErrZeroPeriod
	}
	return 2 * A * (0.5 - math.Abs(1-2*frac(t/T+0.25))), nil
}

// Returns a sawtooth wave y=A*frac(t/T) where A is the amplitude, T is the
// period, and t is elapsed time. Exact multiples of T give 0, not A.
func SawtoothWave(t, A, T float64) (float64, error) {
	if T == 0 {
		return 0, ErrZeroPeriod
	}
	return A * frac(t/T), nil
}

// Returns a single triangular pulse y=A*(1 - |t|) for |t| < 1, and exactly 0
// for |t| >= 1, where A is the amplitude.
func UnitTrianglePulse(t, A float64) float64 {
	if t <= -1 || t >= 1 {
		return 0
	}
	return A * (1 - math.Abs(t))
}

// Returns the logistic curve y=A/(1 + exp(-t)) where A is the amplitude and
// t is elapsed time.
func SigmoidWave(t, A float64) float64 {
	return A / (1 + math.Exp(-t))
}

// Returns a sine wave y=A*sin(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func sineWave(t, A, T float64) (float64, error) {
	if T == 0 {
		return 0, ErrZeroPeriod
	}
	return A * fast.Sin(2*math.Pi*t/T), nil
}

// Returns a cosine wave y=A*cos(2*pi*t/T) where A is the amplitude,
// T is the period, and t is elapsed time.
func cosineWave(t, A, T float64) (float64, error) {
	if T == 0 {
		return 0, ErrZeroPeriod
	}
	return A * fast.Sin(2*math.Pi*t/T+math.Pi/2), nil
}

// frac returns x - floor(x), always in [0,1) regardless of the sign of x.
// For x just below an integer the rounded difference can land exactly on 1;
// wrap it to 0, the start of the next interval.
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
}
