package waveform

import (
	"errors"
	"math/big"
)

// A signal function y=f(t,A,P) evaluated under ctx. Takes amplitude, A, and
// period, P, as inputs and returns the value of the function at time, t.
// Aperiodic functions ignore P.
type SignalFunction func(ctx Context, t, A, P *big.Float) (*big.Float, error)

// A map between string name and signal function pairs
var signalFunctions = map[string]SignalFunction{
	"square":   SquareWave,
	"triangle": TriangleWave,
	"sawtooth": SawtoothWave,
	"unit_triangle": func(_ Context, t, A, _ *big.Float) (*big.Float, error) {
		return UnitTrianglePulse(t, A), nil
	},
	"sigmoid": func(ctx Context, t, A, _ *big.Float) (*big.Float, error) {
		return SigmoidWave(ctx, t, A), nil
	},
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
