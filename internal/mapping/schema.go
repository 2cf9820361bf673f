package mapping

// MappingFile is the YAML document holding an endpoint's mapping history.
type MappingFile struct {
	Version  string         `yaml:"version" json:"version"`
	Endpoint string         `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Mappings []FieldMapping `yaml:"mappings" json:"mappings"`
}

// FieldMapping associates a source path with a target path.
type FieldMapping struct {
	Direction  Direction `yaml:"direction" json:"direction"`
	SourcePath string    `yaml:"source" json:"sourcePath"`
	TargetPath string    `yaml:"target" json:"targetPath"`
}

// Direction tells which payload a mapping's source path addresses.
type Direction string

const (
	DirectionRequest  Direction = "request"
	DirectionResponse Direction = "response"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionRequest || d == DirectionResponse
}

// ByDirection returns the mappings with the given direction.
func ByDirection(ms []FieldMapping, d Direction) []FieldMapping {
	out := make([]FieldMapping, 0, len(ms))

	for _, m := range ms {
		if m.Direction == d {
			out = append(out, m)
		}
	}

	return out
}
