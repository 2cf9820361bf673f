package fieldpath

import (
	"strconv"
	"strings"
)

// NoIndex marks an array segment written as "[*]".
const NoIndex = -1

// Segment is one step of a Path: either a key or an array marker.
type Segment struct {
	Name    string // key text for key segments, may carry a "prefix:" tag
	IsArray bool   // true for "[*]" and "[N]"
	Index   int    // explicit index for "[N]", NoIndex otherwise
}

// Key returns a key segment.
func Key(name string) Segment {
	return Segment{Name: name, Index: NoIndex}
}

// Wildcard returns a "[*]" array segment.
func Wildcard() Segment {
	return Segment{IsArray: true, Index: NoIndex}
}

// Indexed returns a "[N]" array segment.
func Indexed(n int) Segment {
	return Segment{IsArray: true, Index: n}
}

// Prefix returns the namespace prefix of a key ("ns1" for "ns1:getCidade").
func (s Segment) Prefix() string {
	if i := strings.LastIndexByte(s.Name, ':'); i >= 0 {
		return s.Name[:i]
	}

	return ""
}

// LocalName returns the key without its namespace prefix.
func (s Segment) LocalName() string {
	if i := strings.LastIndexByte(s.Name, ':'); i >= 0 {
		return s.Name[i+1:]
	}

	return s.Name
}

// SameKey reports whether two key segments address the same element.
// Namespace prefixes are informational and never take part in the comparison.
func (s Segment) SameKey(other Segment) bool {
	if s.IsArray || other.IsArray {
		return s.IsArray == other.IsArray
	}

	return s.Name == other.Name || s.LocalName() == other.LocalName()
}

// String formats the segment as it appears inside a path.
func (s Segment) String() string {
	if !s.IsArray {
		return s.Name
	}

	if s.Index == NoIndex {
		return "[*]"
	}

	return "[" + strconv.Itoa(s.Index) + "]"
}

// Path is an ordered sequence of segments.
type Path []Segment

// Parse converts a path string into segments. Parsing is best-effort and
// total: malformed input produces literal key segments instead of an error.
//
// Supported forms: "a.b", "a[*].b", "a[0].b", "a[].b", "ns1:a.b" and
// "a[key]" (bracketed key).
func Parse(path string) Path {
	tokens := Lex(path)
	segments := make(Path, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenIdent:
			segments = append(segments, Key(tok.Text))

		case TokenLBracket:
			seg, consumed, ok := parseBracket(tokens[i+1:])
			if ok {
				segments = append(segments, seg)
			}

			i += consumed

		case TokenDot, TokenRBracket, TokenIndex, TokenStar:
			// separators and stray bracket content carry no key
		}
	}

	return segments
}

// parseBracket parses the tokens following a "[". It returns the segment,
// how many tokens it consumed and whether a segment was produced.
func parseBracket(rest []Token) (Segment, int, bool) {
	if len(rest) == 0 {
		return Segment{}, 0, false
	}

	switch rest[0].Kind {
	case TokenRBracket:
		// "[]" is shorthand for "[*]"
		return Wildcard(), 1, true

	case TokenStar:
		return Wildcard(), closedBy(rest), true

	case TokenIndex:
		n, err := strconv.Atoi(rest[0].Text)
		if err != nil {
			return Wildcard(), closedBy(rest), true
		}

		return Indexed(n), closedBy(rest), true

	case TokenIdent:
		return Key(rest[0].Text), closedBy(rest), true

	default:
		return Segment{}, 0, false
	}
}

func closedBy(rest []Token) int {
	if len(rest) > 1 && rest[1].Kind == TokenRBracket {
		return 2
	}

	return 1
}

// String formats the path: keys joined by ".", array markers appended.
func (p Path) String() string {
	var b strings.Builder

	for i, seg := range p {
		if !seg.IsArray && i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(seg.String())
	}

	return b.String()
}

// Field returns a copy of p extended with a key segment.
func (p Path) Field(name string) Path {
	return p.with(Key(name))
}

// Slice returns a copy of p extended with a "[*]" segment.
func (p Path) Slice() Path {
	return p.with(Wildcard())
}

func (p Path) with(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, seg)
}

// Keys returns the key segments only, dropping array markers.
func (p Path) Keys() Path {
	keys := make(Path, 0, len(p))

	for _, seg := range p {
		if !seg.IsArray {
			keys = append(keys, seg)
		}
	}

	return keys
}

// HasArray reports whether the path contains an array marker.
func (p Path) HasArray() bool {
	for _, seg := range p {
		if seg.IsArray {
			return true
		}
	}

	return false
}
