package source

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Returns a decodeHook function that can be used to unmarshal sources from a
// yaml file using mapstructure. This supports configuration solutions like
// spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Source)(nil)).Elem() {
			// If the target type is Source, create the correct source type from the yaml entry
			return createSourceFromYamlEntry(yamlEntry)
		}
		// Otherwise, return the yaml entry as is (default behaviour)
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a generic source from a yaml entry based on the source "type" (or
// "Type") field.
func createSourceFromYamlEntry(yamlEntry interface{}) (Source, error) {
	// yaml entries should always be a string key with some sort of value
	m, ok := yamlEntry.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", yamlEntry)
	}

	// must check both m["type"] and m["Type"] because some yaml parsers convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("source type field is missing or not a string")
		}
	}

	src, err := newSourceOfType(typeStr)
	if err != nil {
		return nil, err
	}

	// Use mapstructure to decode the map into the Source
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			periodicSourceDecodeHookFunc(), // decodeHook for periodicSource
			sigmoidSourceDecodeHookFunc(),  // decodeHook for sigmoidSource
			pulseSourceDecodeHookFunc(),    // decodeHook for pulseSource
		),
		Result: &src,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(m); err != nil {
		return nil, err
	}

	return src, nil
}

// Returns a DecodeHookFunc that can be used to unmarshal a periodicSource
// from a yaml file.
func periodicSourceDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(periodicSource{}) {
			// unmarshal into PeriodicParams and use constructor function to create periodicSource
			var params PeriodicParams
			if err := sourceParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewPeriodicSource(params)
		}
		// If the type is not periodicSource, return data unchanged
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a sigmoidSource
// from a yaml file.
func sigmoidSourceDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(sigmoidSource{}) {
			var params SigmoidParams
			if err := sourceParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewSigmoidSource(params)
		}
		return data, nil
	}
}

// Returns a DecodeHookFunc that can be used to unmarshal a pulseSource from
// a yaml file.
func pulseSourceDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t == reflect.TypeOf(pulseSource{}) {
			var params PulseParams
			if err := sourceParamsDecodeHookFunc(&params, data); err != nil {
				return nil, err
			}
			return NewPulseSource(params)
		}
		return data, nil
	}
}

// Use mapstructure to unmarshal data into sourceParams.
func sourceParamsDecodeHookFunc[T any](sourceParams *T, data interface{}) error {
	m, ok := data.(map[string]interface{})
	if !ok {
		return fmt.Errorf("expected map[string]interface{}, got %T", data)
	}

	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), // parses uuids
		),
		Result: &sourceParams,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	if err := decoder.Decode(m); err != nil {
		return err
	}
	return nil
}
