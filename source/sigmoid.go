package source

import "github.com/synaptecltd/waveform/mathfuncs"

// A logistic sigmoid source rising from 0 towards its amplitude, passing
// through half amplitude at the configured midpoint.
type sigmoidSource struct {
	SourceBase

	midpoint float64 // time of the half-amplitude crossing in seconds, default 0
}

// Parameters to use for the sigmoid source.
type SigmoidParams struct {
	Name      string  `yaml:"name" mapstructure:"name"`           // name of the source, used for identification
	Amplitude float64 `yaml:"amplitude" mapstructure:"amplitude"` // saturation value of the curve, omitted defaults to 1
	Midpoint  float64 `yaml:"midpoint" mapstructure:"midpoint"`   // time of the half-amplitude crossing in seconds, default 0
}

// Initialise the internal fields of sigmoidSource when it is unmarshalled
// from yaml.
func (s *sigmoidSource) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params SigmoidParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	src, err := NewSigmoidSource(params)
	if err != nil {
		return err
	}

	*s = *src

	return nil
}

// Returns a sigmoidSource pointer with the requested parameters. Omitted
// amplitude defaults to 1.
func NewSigmoidSource(params SigmoidParams) (*sigmoidSource, error) {
	src := &sigmoidSource{}

	src.name = params.Name
	src.typeName = "sigmoid"
	src.midpoint = params.Midpoint
	src.setAmplitudeWithDefault(params.Amplitude)

	return src, nil
}

// At returns the value of the source at time t.
func (s *sigmoidSource) At(t float64) (float64, error) {
	return mathfuncs.SigmoidWave(t-s.midpoint, s.amplitude), nil
}

// Returns the time of the half-amplitude crossing in seconds.
func (s *sigmoidSource) GetMidpoint() float64 {
	return s.midpoint
}
