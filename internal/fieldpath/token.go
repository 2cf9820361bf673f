package fieldpath

import "strings"

//go:generate go tool stringer -type=TokenKind -output=token_string.go

// TokenKind classifies a lexical token of a path string.
type TokenKind int

const (
	TokenIdent    TokenKind = iota // key text, or non-index bracket content
	TokenDot                       // "."
	TokenLBracket                  // "["
	TokenIndex                     // digits between brackets
	TokenStar                      // "*" between brackets
	TokenRBracket                  // "]"
)

// Token is a lexical unit of a path. Text holds the exact input bytes,
// so concatenating the Text of all tokens reproduces the input.
type Token struct {
	Kind TokenKind
	Text string
}

// Lex splits a path into tokens. It never fails: a "[" without a closing
// "]" is emitted as TokenLBracket followed by the remaining input as a
// single TokenIdent.
func Lex(path string) []Token {
	var tokens []Token

	start := 0
	flush := func(end int) {
		if end > start {
			tokens = append(tokens, Token{Kind: TokenIdent, Text: path[start:end]})
		}
	}

	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenDot, Text: "."})
			start = i + 1

		case '[':
			flush(i)
			tokens = append(tokens, Token{Kind: TokenLBracket, Text: "["})

			closing := strings.IndexByte(path[i+1:], ']')
			if closing < 0 {
				start = i + 1
				i = len(path)

				continue
			}

			closing += i + 1
			if inner := path[i+1 : closing]; inner != "" {
				tokens = append(tokens, Token{Kind: bracketKind(inner), Text: inner})
			}

			tokens = append(tokens, Token{Kind: TokenRBracket, Text: "]"})
			i = closing
			start = closing + 1

		case ']':
			// Stray closing bracket outside a bracket region.
			flush(i)
			tokens = append(tokens, Token{Kind: TokenRBracket, Text: "]"})
			start = i + 1
		}
	}

	flush(len(path))

	return tokens
}

func bracketKind(inner string) TokenKind {
	if inner == "*" {
		return TokenStar
	}

	for i := 0; i < len(inner); i++ {
		if inner[i] < '0' || inner[i] > '9' {
			return TokenIdent
		}
	}

	return TokenIndex
}
