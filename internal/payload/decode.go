package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a stored example payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension; unknown
// extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and decodes an example payload file.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read example %s: %w", path, err)
	}

	return Decode(data, FormatFromPath(path))
}

// Decode parses data into the canonical value shape: map[string]any,
// []any, string, bool, json.Number or int/float kinds, and nil.
func Decode(data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var v any

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse YAML example: %w", err)
		}

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to parse JSON example: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported example format %q", format)
	}

	return Canonical(v), nil
}

// Canonical converts decoder-specific container types (such as the
// map[any]any produced for YAML mappings with non-string keys) into
// map[string]any and []any.
func Canonical(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Canonical(val)
		}

		return out

	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = Canonical(val)
		}

		return out

	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Canonical(val)
		}

		return out

	default:
		return v
	}
}
