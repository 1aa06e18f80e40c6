// Package source provides YAML-configurable signal source definitions built
// on the host-precision signal function family in mathfuncs. A source binds a
// waveform shape to concrete parameters (amplitude, period, phase, offset)
// and evaluates one sample per call; it holds no state between calls.
package source

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

// Set is a collection of signal sources.
type Set map[string]Source

// Source is the interface for all signal source types (periodic, sigmoid,
// pulse).
type Source interface {
	UnmarshalYAML(unmarshal func(interface{}) error) error // Unmarshals a source entry into the correct type based on the type field
	TypeAsString() string                                  // Returns the source type as a string
	GetName() string                                       // Returns the configured name of the source
	GetAmplitude() float64                                 // Returns the peak magnitude of the source
	At(t float64) (float64, error)                         // Returns the value of the source at time t
}

// UnmarshalYAML unmarshals a source entry into the correct type based on the
// type field.
func (s *Set) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw map[string]map[string]interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if *s == nil {
		*s = make(Set)
	}

	for key, value := range raw {
		typeStr, ok := value["type"].(string)
		if !ok {
			return fmt.Errorf("source %q: type field is missing or not a string", key)
		}

		src, err := newSourceOfType(typeStr)
		if err != nil {
			return fmt.Errorf("source %q: %w", key, err)
		}

		// Convert the value map back into YAML
		valueYAML, err := yaml.Marshal(value)
		if err != nil {
			return err
		}

		// Unmarshal the YAML into the source
		if err := yaml.Unmarshal(valueYAML, src); err != nil {
			return err
		}

		(*s)[key] = src
	}

	return nil
}

// SampleAll evaluates every source in the set at time t and returns the sum
// of their values.
func (s Set) SampleAll(t float64) (float64, error) {
	value := 0.0
	for key := range s {
		v, err := s[key].At(t)
		if err != nil {
			return 0, fmt.Errorf("source %q: %w", key, err)
		}
		value += v
	}
	return value, nil
}

// Add a source to the set with a UUID and returns the UUID.
func (s *Set) Add(src Source) uuid.UUID {
	if *s == nil {
		*s = make(Set)
	}
	uuid := uuid.New()
	(*s)[uuid.String()] = src
	return uuid
}

// Returns an empty source of the named type. Periodic shapes map to a
// periodic source with the shape preset from the type name.
func newSourceOfType(typeStr string) (Source, error) {
	switch typeStr {
	case "square", "triangle", "sawtooth", "sine", "cosine":
		return &periodicSource{}, nil
	case "sigmoid":
		return &sigmoidSource{}, nil
	case "unit_triangle":
		return &pulseSource{}, nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", typeStr)
	}
}
