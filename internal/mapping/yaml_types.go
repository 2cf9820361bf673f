package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDirection parses a direction name case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return d, fmt.Errorf("invalid direction %q: want %q or %q", s, DirectionRequest, DirectionResponse)
	}

	return d, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Direction.
// Case and surrounding blanks are normalized; unknown names are kept and
// reported by Validate.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: direction must be a string, got %v", node.Line, node.Kind)
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	*d = Direction(strings.ToLower(strings.TrimSpace(s)))

	return nil
}
