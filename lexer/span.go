package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan converts a pair of byte offsets into a Span.
func NewSpan(start, end int) (Span, error) {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return Span{}, err
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: s, End: e}, nil
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Empty returns true if the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the slice of src covered by the span.
func (s Span) Text(src string) string {
	if int(s.End) > len(src) || s.Start > s.End {
		return ""
	}
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
