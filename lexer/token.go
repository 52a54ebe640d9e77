package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tk     TokenKind
	lexeme string
	span   Span

	n int64
}

// NewToken creates a lexical unit
func NewToken(tk TokenKind, lexeme string, span Span) Token {
	return Token{
		tk:     tk,
		lexeme: lexeme,
		span:   span,
	}
}

// NewNumberToken creates a number token carrying its decoded value
func NewNumberToken(n int64, lexeme string, span Span) Token {
	tok := NewToken(TokenNumber, lexeme, span)
	tok.n = n
	return tok
}

// Kind returns the kind of the lexical unit
func (t Token) Kind() TokenKind {
	return t.tk
}

// Span returns the byte range of the lexical unit
func (t Token) Span() Span {
	return t.span
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Number returns the value of a number token, zero for any other kind.
func (t Token) Number() int64 {
	return t.n
}

// Is returns true if the token matches the given kind
func (t Token) Is(tk TokenKind) bool {
	return t.tk == tk
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tk, t.lexeme, t.span.Start, t.span.End)
}
