package match

import (
	"strings"

	"pathscope/internal/fieldpath"
)

// SOAP wrapper element names as they appear in namespace-preserving parses.
const (
	EnvelopeElement = "Envelope"
	BodyElement     = "SOAP-ENV:Body"
)

// DefaultBodyMarkers are the path starts that already address the Body.
var DefaultBodyMarkers = []string{"SOAP-ENV:Body", "Body"}

// StripEnvelope removes a leading "<prefix>:Envelope." key. It reports
// false when the path does not start with a namespaced Envelope key
// followed by a dot.
func StripEnvelope(path string) (string, bool) {
	tokens := fieldpath.Lex(path)
	if len(tokens) < 2 || tokens[0].Kind != fieldpath.TokenIdent || tokens[1].Kind != fieldpath.TokenDot {
		return path, false
	}

	head := tokens[0].Text
	if !strings.Contains(head, ":") || fieldpath.Key(head).LocalName() != EnvelopeElement {
		return path, false
	}

	return path[len(head)+1:], true
}

// StripBody removes a leading "<marker>[*]." for the first matching marker.
func StripBody(path string, markers []string) (string, bool) {
	for _, m := range markers {
		if rest, ok := strings.CutPrefix(path, m+"[*]."); ok {
			return rest, true
		}
	}

	return path, false
}

// HasBodyPrefix reports whether path starts with one of the body markers.
func HasBodyPrefix(path string, markers []string) bool {
	for _, m := range markers {
		if strings.HasPrefix(path, m) {
			return true
		}
	}

	return false
}
