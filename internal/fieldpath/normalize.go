package fieldpath

import "strings"

// Normalize rewrites every explicit array index ("[0]", "[12]") to "[*]".
// All other input, including namespace prefixes and malformed brackets,
// is kept byte-for-byte, so Normalize is idempotent.
func Normalize(path string) string {
	return rewrite(path, func(tok Token) string {
		if tok.Kind == TokenIndex {
			return "*"
		}

		return tok.Text
	})
}

// StripNamespaces removes the "prefix:" tag from every key of the path.
func StripNamespaces(path string) string {
	return rewrite(path, func(tok Token) string {
		if tok.Kind == TokenIdent {
			return Key(tok.Text).LocalName()
		}

		return tok.Text
	})
}

// StripWildcards removes every closed "[*]" marker and keeps all other
// text, including explicit indices and malformed brackets.
func StripWildcards(path string) string {
	tokens := Lex(path)

	var b strings.Builder

	b.Grow(len(path))

	for i := 0; i < len(tokens); i++ {
		if i+2 < len(tokens) &&
			tokens[i].Kind == TokenLBracket &&
			tokens[i+1].Kind == TokenStar &&
			tokens[i+2].Kind == TokenRBracket {
			i += 2
			continue
		}

		b.WriteString(tokens[i].Text)
	}

	return b.String()
}

func rewrite(path string, fn func(Token) string) string {
	var b strings.Builder

	b.Grow(len(path))

	for _, tok := range Lex(path) {
		b.WriteString(fn(tok))
	}

	return b.String()
}

// Equivalent reports whether two paths address the same element, ignoring
// array indices, array markers and namespace prefixes:
//
//  1. identical after Normalize: equivalent;
//  2. otherwise both are reduced to their key segments;
//  3. different key counts: not equivalent;
//  4. every key pair must match by full name or by local name.
func Equivalent(a, b string) bool {
	if Normalize(a) == Normalize(b) {
		return true
	}

	keysA := significantKeys(a)
	keysB := significantKeys(b)

	if len(keysA) != len(keysB) {
		return false
	}

	for i := range keysA {
		if !keysA[i].SameKey(keysB[i]) {
			return false
		}
	}

	return true
}

// significantKeys drops array markers and bare "*" keys ("a.*.b").
func significantKeys(path string) Path {
	keys := Parse(path).Keys()
	out := keys[:0]

	for _, seg := range keys {
		if seg.Name != "*" {
			out = append(out, seg)
		}
	}

	return out
}
