package source

// SourceBase is the base struct for all source types.
type SourceBase struct {
	// Setters and getters are provided for private fields below to allow for error checking
	name      string  // the configured name of the source, used for identification
	typeName  string  // the type of source
	amplitude float64 // peak magnitude of the source
}

// Returns the configured name of the source.
func (s *SourceBase) GetName() string {
	return s.name
}

// Returns the type of source as a string.
func (s *SourceBase) TypeAsString() string {
	return s.typeName
}

// Returns the peak magnitude of the source.
func (s *SourceBase) GetAmplitude() float64 {
	return s.amplitude
}

// Sets the peak magnitude of the source. Any real amplitude is valid,
// including zero and negative values.
func (s *SourceBase) SetAmplitude(amplitude float64) {
	s.amplitude = amplitude
}

// Applies the configured amplitude, defaulting to 1 when the field was
// omitted. YAML cannot distinguish an omitted amplitude from an explicit
// zero; sources that need a genuine zero amplitude can call SetAmplitude
// after construction.
func (s *SourceBase) setAmplitudeWithDefault(amplitude float64) {
	if amplitude == 0 {
		amplitude = 1
	}
	s.amplitude = amplitude
}
