package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/spanlisp/lexer"
)

var (
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidForm     = errors.New("invalid form")
)

// Error is a syntax error found while building the tree. Token is nil when
// the input ended early; Span then is the empty span at the end of input.
type Error struct {
	Err   error
	Span  lexer.Span
	Token *lexer.Token
}

func (e *Error) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%v at %v", e.Err, e.Span)
	}
	return fmt.Sprintf("%v %q at %v", e.Err, e.Token.Text(), e.Span)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Location returns the byte range of the offending token.
func (e *Error) Location() lexer.Span {
	return e.Span
}
