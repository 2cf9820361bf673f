package mapping

import "strings"

// Filter returns the mappings matching direction (empty = any) whose source
// or target path contains search, compared case-insensitively (empty
// search = any). Order is preserved.
func Filter(ms []FieldMapping, direction Direction, search string) []FieldMapping {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]FieldMapping, 0, len(ms))

	for _, m := range ms {
		if direction != "" && m.Direction != direction {
			continue
		}

		if needle != "" &&
			!strings.Contains(strings.ToLower(m.SourcePath), needle) &&
			!strings.Contains(strings.ToLower(m.TargetPath), needle) {
			continue
		}

		out = append(out, m)
	}

	return out
}
