package mapping

import (
	"fmt"
	"strings"

	"pathscope/internal/diagnostic"
	"pathscope/internal/fieldpath"
)

// Validate checks a mapping history for structural problems. It does not
// look at any payload; see structure.Service.CheckMappings for that.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "")
		return res
	}

	for i, m := range mf.Mappings {
		where := fmt.Sprintf("mappings[%d]", i)

		if !m.Direction.IsValid() {
			res.AddError("invalid_direction",
				fmt.Sprintf("%s: direction %q must be %q or %q", where, m.Direction, DirectionRequest, DirectionResponse),
				m.SourcePath)
		}

		if strings.TrimSpace(m.SourcePath) == "" {
			res.AddError("empty_source_path", where+": source path is empty", "")
		}

		if strings.TrimSpace(m.TargetPath) == "" {
			res.AddError("empty_target_path", where+": target path is empty", m.SourcePath)
		}
	}

	validateDuplicates(res, mf.Mappings)

	return res
}

// validateDuplicates warns when two mappings of the same direction have
// equivalent source paths; target suggestion only ever reuses the first.
func validateDuplicates(res *diagnostic.Diagnostics, ms []FieldMapping) {
	for i := range ms {
		if strings.TrimSpace(ms[i].SourcePath) == "" {
			continue
		}

		for j := range i {
			if ms[j].Direction != ms[i].Direction || !fieldpath.Equivalent(ms[j].SourcePath, ms[i].SourcePath) {
				continue
			}

			res.AddWarning("duplicate_source_path",
				fmt.Sprintf("mappings[%d] repeats the source of mappings[%d]", i, j),
				ms[i].SourcePath, ms[j].SourcePath)

			break
		}
	}
}
