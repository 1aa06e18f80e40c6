package source

import "github.com/synaptecltd/waveform/mathfuncs"

// A single unit-width triangular pulse, peaking at the configured centre time
// and exactly zero one second or more away from it.
type pulseSource struct {
	SourceBase

	centre float64 // time of the pulse peak in seconds, default 0
}

// Parameters to use for the pulse source.
type PulseParams struct {
	Name      string  `yaml:"name" mapstructure:"name"`           // name of the source, used for identification
	Amplitude float64 `yaml:"amplitude" mapstructure:"amplitude"` // peak value of the pulse, omitted defaults to 1
	Centre    float64 `yaml:"centre" mapstructure:"centre"`       // time of the pulse peak in seconds, default 0
}

// Initialise the internal fields of pulseSource when it is unmarshalled from
// yaml.
func (p *pulseSource) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var params PulseParams
	if err := unmarshal(&params); err != nil {
		return err
	}

	src, err := NewPulseSource(params)
	if err != nil {
		return err
	}

	*p = *src

	return nil
}

// Returns a pulseSource pointer with the requested parameters. Omitted
// amplitude defaults to 1.
func NewPulseSource(params PulseParams) (*pulseSource, error) {
	src := &pulseSource{}

	src.name = params.Name
	src.typeName = "unit_triangle"
	src.centre = params.Centre
	src.setAmplitudeWithDefault(params.Amplitude)

	return src, nil
}

// At returns the value of the source at time t.
func (p *pulseSource) At(t float64) (float64, error) {
	return mathfuncs.UnitTrianglePulse(t-p.centre, p.amplitude), nil
}

// Returns the time of the pulse peak in seconds.
func (p *pulseSource) GetCentre() float64 {
	return p.centre
}
