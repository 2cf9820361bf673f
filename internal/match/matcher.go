package match

import (
	"strings"

	"golang.org/x/text/cases"

	"pathscope/internal/fieldpath"
)

// Strategy names the rule that produced a match.
type Strategy string

const (
	StrategyExact            Strategy = "exact"
	StrategyEnvelopeStripped Strategy = "envelope_stripped"
	StrategyBodyPrefixed     Strategy = "body_prefixed"
)

// Match is a successful lookup of a candidate path.
type Match struct {
	Path      string   // the known path that matched
	Candidate string   // the rewritten candidate that was compared
	Strategy  Strategy // which fallback produced the match
}

// Options configure a Matcher. Zero values select the SOAP 1.1 defaults.
type Options struct {
	// BodyElement is prepended as "<BodyElement>[*]." by the body fallback.
	BodyElement string
	// BodyMarkers disable the body fallback for paths starting with them.
	BodyMarkers []string
}

// Matcher finds the known path equivalent to a candidate path.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	opts Options
}

// NewMatcher creates a Matcher.
func NewMatcher(opts Options) *Matcher {
	if opts.BodyElement == "" {
		opts.BodyElement = BodyElement
	}

	if len(opts.BodyMarkers) == 0 {
		opts.BodyMarkers = DefaultBodyMarkers
	}

	return &Matcher{opts: opts}
}

type rewriter struct {
	strategy Strategy
	rewrite  func(string) (string, bool)
}

// FindMatch returns the first known path equivalent to candidate, trying
// in order:
//  1. the candidate as given;
//  2. the candidate without a leading "<ns>:Envelope." key;
//  3. the candidate under "SOAP-ENV:Body[*].", unless it already starts
//     with a body marker.
//
// ok=false is a normal outcome; callers then ask for suggestions.
func (m *Matcher) FindMatch(candidate string, known *fieldpath.Set) (Match, bool) {
	if known.Len() == 0 {
		return Match{}, false
	}

	for _, rw := range m.rewriters() {
		rewritten, ok := rw.rewrite(candidate)
		if !ok {
			continue
		}

		for p := range known.All {
			if fieldpath.Equivalent(rewritten, p) {
				return Match{Path: p, Candidate: rewritten, Strategy: rw.strategy}, true
			}
		}
	}

	return Match{}, false
}

func (m *Matcher) rewriters() []rewriter {
	return []rewriter{
		{StrategyExact, func(c string) (string, bool) { return c, true }},
		{StrategyEnvelopeStripped, StripEnvelope},
		{StrategyBodyPrefixed, func(c string) (string, bool) {
			if HasBodyPrefix(c, m.opts.BodyMarkers) {
				return c, false
			}

			return m.opts.BodyElement + "[*]." + c, true
		}},
	}
}

// SuggestSimilar returns known paths related to candidate by substring
// containment in either direction, compared case-insensitively with
// namespace prefixes removed. At most limit paths are returned (limit <= 0
// means no bound), in the set's iteration order.
func (m *Matcher) SuggestSimilar(candidate string, known *fieldpath.Set, limit int) []string {
	suggestions := []string{}

	fold := cases.Fold()
	needle := fold.String(fieldpath.StripNamespaces(candidate))

	for p := range known.All {
		if limit > 0 && len(suggestions) >= limit {
			break
		}

		hay := fold.String(fieldpath.StripNamespaces(p))
		if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
			suggestions = append(suggestions, p)
		}
	}

	return suggestions
}
