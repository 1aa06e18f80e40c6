package source_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/synaptecltd/waveform/source"
	"gopkg.in/yaml.v2"
)

func TestUnmarshalYAML(t *testing.T) {
	// dyadic values survive the %f round-trip through YAML exactly
	amplitude := 2.5
	period := 4.0
	midpoint := 0.25

	// Define a YAML string that represents a square wave and a sigmoid.
	yamlStr := fmt.Sprintf(`
wave1:
  type: square
  amplitude: %f
  period: %f
ramp1:
  type: sigmoid
  amplitude: %f
  midpoint: %f
`,
		amplitude, period, amplitude, midpoint)

	set := make(source.Set)
	err := yaml.Unmarshal([]byte(yamlStr), &set)
	assert.NoError(t, err)
	assert.Len(t, set, 2)

	wave := set["wave1"]
	assert.Equal(t, "square", wave.TypeAsString())
	assert.Equal(t, amplitude, wave.GetAmplitude())

	// square wave is +A at the start of the period and -A halfway through
	value, err := wave.At(0)
	assert.NoError(t, err)
	assert.Equal(t, amplitude, value)
	value, err = wave.At(period / 2)
	assert.NoError(t, err)
	assert.Equal(t, -amplitude, value)

	ramp := set["ramp1"]
	assert.Equal(t, "sigmoid", ramp.TypeAsString())
	value, err = ramp.At(midpoint)
	assert.NoError(t, err)
	assert.InDelta(t, amplitude/2, value, 1e-12)
}

func TestUnmarshalYAMLUnknownType(t *testing.T) {
	yamlStr := `
bad1:
  type: chirp
`
	set := make(source.Set)
	err := yaml.Unmarshal([]byte(yamlStr), &set)
	assert.Error(t, err)
}

func TestUnmarshalYAMLDefaults(t *testing.T) {
	yamlStr := `
wave1:
  type: sawtooth
`
	set := make(source.Set)
	err := yaml.Unmarshal([]byte(yamlStr), &set)
	assert.NoError(t, err)

	// omitted amplitude and period default to 1
	wave := set["wave1"]
	assert.Equal(t, 1.0, wave.GetAmplitude())
	value, err := wave.At(0.25)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, value, 1e-12)
}

func TestGetTypeAsString(t *testing.T) {
	periodic, err := source.NewPeriodicSource(source.PeriodicParams{Shape: "triangle"})
	assert.NoError(t, err)
	assert.Equal(t, "triangle", periodic.TypeAsString())

	sigmoid, _ := source.NewSigmoidSource(source.SigmoidParams{})
	assert.Equal(t, "sigmoid", sigmoid.TypeAsString())

	pulse, _ := source.NewPulseSource(source.PulseParams{})
	assert.Equal(t, "unit_triangle", pulse.TypeAsString())
}
