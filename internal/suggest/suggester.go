package suggest

import (
	"strings"

	"pathscope/internal/fieldpath"
	"pathscope/internal/mapping"
	"pathscope/internal/match"
)

// Reason tells how a suggestion was produced.
type Reason string

const (
	ReasonExistingMapping Reason = "existing_mapping"
	ReasonHeuristic       Reason = "heuristic"
)

// Pattern values report whether any mapping history was available.
const (
	PatternDetected = "detected"
	PatternNone     = "none"
)

// DefaultStripPrefixes are the leading keys removed from heuristic
// suggestions, each at most once and in this order.
var DefaultStripPrefixes = []string{"data", "response", "result", "items"}

// Suggestion is a proposed target path.
type Suggestion struct {
	Path   string
	Reason Reason
	// MatchedPath is the known source path an existing mapping was found for.
	MatchedPath           string
	HasArrayInSource      bool
	ExistingArrayMappings bool
	Pattern               string
}

// Options configure a Suggester.
type Options struct {
	// StripPrefixes replaces DefaultStripPrefixes when non-nil. An empty,
	// non-nil slice disables literal prefix stripping.
	StripPrefixes []string
	// BodyMarkers are the SOAP body keys removed from the front of a path.
	BodyMarkers []string
	// Matcher locates the source among known paths. Defaults to a matcher
	// with SOAP 1.1 settings.
	Matcher *match.Matcher
}

// Suggester proposes target paths. It is safe for concurrent use.
type Suggester struct {
	strip   []string
	markers []string
	matcher *match.Matcher
}

// NewSuggester creates a Suggester.
func NewSuggester(opts Options) *Suggester {
	s := &Suggester{
		strip:   opts.StripPrefixes,
		markers: opts.BodyMarkers,
		matcher: opts.Matcher,
	}

	if s.strip == nil {
		s.strip = DefaultStripPrefixes
	}

	if len(s.markers) == 0 {
		s.markers = match.DefaultBodyMarkers
	}

	if s.matcher == nil {
		s.matcher = match.NewMatcher(match.Options{BodyMarkers: s.markers})
	}

	return s
}

// Suggest proposes a target path for source. known is the example's path
// inventory and prior the mapping history of the same direction; both may
// be empty. Suggest never fails.
func (s *Suggester) Suggest(source string, known *fieldpath.Set, prior []mapping.FieldMapping) Suggestion {
	if m, ok := s.matcher.FindMatch(source, known); ok {
		for _, fm := range prior {
			if fieldpath.Equivalent(fm.SourcePath, m.Path) || fieldpath.Equivalent(fm.SourcePath, source) {
				return Suggestion{
					Path:        fm.TargetPath,
					Reason:      ReasonExistingMapping,
					MatchedPath: m.Path,
				}
			}
		}
	}

	sug := Suggestion{
		Reason:                ReasonHeuristic,
		HasArrayInSource:      fieldpath.Parse(source).HasArray(),
		ExistingArrayMappings: targetsHaveArray(prior),
		Pattern:               PatternNone,
	}

	if len(prior) > 0 {
		sug.Pattern = PatternDetected
	}

	path := fieldpath.Normalize(source)

	if sug.HasArrayInSource && !sug.ExistingArrayMappings {
		path = strings.ReplaceAll(fieldpath.StripWildcards(path), "..", ".")
	}

	sug.Path = s.simplify(path)

	return sug
}

// simplify removes the SOAP wrappers, namespace prefixes and configured
// leading keys from path. Text it does not remove is kept as written.
func (s *Suggester) simplify(path string) string {
	path, _ = match.StripEnvelope(path)
	path, _ = match.StripBody(path, s.markers)
	path = fieldpath.StripNamespaces(path)

	for _, prefix := range s.strip {
		path = strings.TrimPrefix(path, prefix+".")
	}

	return path
}

func targetsHaveArray(prior []mapping.FieldMapping) bool {
	for _, fm := range prior {
		if fieldpath.Parse(fm.TargetPath).HasArray() {
			return true
		}
	}

	return false
}
