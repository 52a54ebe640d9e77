package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrNumberOverflow   = errors.New("number overflow")
	ErrSourceTooLarge   = errors.New("source too large")
)

// Error is a lexical error tied to the text that caused it.
type Error struct {
	Err  error
	Span Span
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v %q at %v", e.Err, e.Text, e.Span)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Location returns the byte range of the offending text.
func (e *Error) Location() Span {
	return e.Span
}
