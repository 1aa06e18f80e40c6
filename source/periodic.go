package source

import (
	"fmt"

	"github.com/synaptecltd/waveform/mathfuncs"
)

// A periodic signal source (square, triangle, sawtooth, sine or cosine wave)
// evaluated with the host-precision signal function family.
type periodicSource struct {
	SourceBase

	phase  float64 // horizontal shift in seconds, default 0
	offset float64 // vertical offset added to every sample, default 0

	// internal state
	signalFunc mathfuncs.SignalFunction // set from the shape name
	period     float64                  // period of the wave in seconds
}

// The shapes a periodic source can take. Aperiodic entries of the mathfuncs
// registry (sigmoid, unit_triangle) have their own source types.
var periodicShapes = map[string]bool{
	"square":   true,
	"triangle": true,
	"sawtooth": true,
	"sine":     true,
	"cosine":   true,
}

// Parameters to use for the periodic source. All can be accessed publicly
// and used to define periodicSource.
type PeriodicParams struct {
	Name      string  `yaml:"name" mapstructure:"name"`           // name of the source, used for identification
	Shape     string  `yaml:"type" mapstructure:"type"`           // waveform shape: square, triangle, sawtooth, sine or cosine
	Amplitude float64 `yaml:"amplitude" mapstructure:"amplitude"` // peak magnitude of the wave, omitted defaults to 1
	Period    float64 `yaml:"period" mapstructure:"period"`       // period of the wave in seconds, omitted defaults to 1
	Phase     float64 `yaml:"phase" mapstructure:"phase"`         // horizontal shift in seconds, default 0
	Offset    float64 `yaml:"offset" mapstructure:"offset"`       // vertical offset added to every sample, default 0
}

// Initialise the internal fields of periodicSource when it is unmarshalled
// from yaml.
func (p *periodicSource) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params PeriodicParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	// This performs checking for invalid values
	src, err := NewPeriodicSource(params)
	if err != nil {
		return err
	}

	// Copy fields to p
	*p = *src

	return nil
}

// Returns a periodicSource pointer with the requested parameters, checking
// for invalid values. Omitted amplitude and period default to 1.
func NewPeriodicSource(params PeriodicParams) (*periodicSource, error) {
	src := &periodicSource{}

	// Fields that can never be invalid set directly
	src.name = params.Name
	src.phase = params.Phase
	src.offset = params.Offset
	src.setAmplitudeWithDefault(params.Amplitude)

	// Invalid values checked by setters
	if err := src.SetShapeByName(params.Shape); err != nil {
		return nil, err
	}
	src.SetPeriod(params.Period)

	return src, nil
}

// At returns the value of the source at time t.
func (p *periodicSource) At(t float64) (float64, error) {
	value, err := p.signalFunc(t-p.phase, p.amplitude, p.period)
	if err != nil {
		return 0, err
	}
	return value + p.offset, nil
}

// Setters

// Sets the waveform shape of the source by name, looking up the signal
// function in the mathfuncs registry.
func (p *periodicSource) SetShapeByName(name string) error {
	if !periodicShapes[name] {
		return fmt.Errorf("not a periodic signal shape: %s", name)
	}

	signalFunc, err := mathfuncs.GetSignalFunctionFromName(name)
	if err != nil {
		return err
	}
	p.typeName = name
	p.signalFunc = signalFunc
	return nil
}

// Sets the period of the wave in seconds. A period of 0 selects the default
// of 1; any nonzero period, negative included, is used as given.
func (p *periodicSource) SetPeriod(period float64) {
	if period == 0 {
		p.period = 1
		return
	}
	p.period = period
}

// Getters

// Returns the period of the wave in seconds.
func (p *periodicSource) GetPeriod() float64 {
	return p.period
}

// Returns the horizontal shift of the wave in seconds.
func (p *periodicSource) GetPhase() float64 {
	return p.phase
}

// Returns the vertical offset added to every sample.
func (p *periodicSource) GetOffset() float64 {
	return p.offset
}

// Returns the signal function used by the source.
func (p *periodicSource) GetSignalFunction() mathfuncs.SignalFunction {
	return p.signalFunc
}
