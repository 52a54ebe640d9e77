// Package diag renders syntax errors against the source they came from.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/xiam/spanlisp/lexer"
)

// Position is a 1-based line and column. Columns count runes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Options controls how diagnostics are rendered.
type Options struct {
	Color bool
}

// Locatable is implemented by errors that know which part of the source
// they refer to.
type Locatable interface {
	Location() lexer.Span
}

// Locate converts a byte offset into a line and column.
func Locate(src string, offset uint32) Position {
	off := clamp(src, offset)
	lineStart := strings.LastIndexByte(src[:off], '\n') + 1
	return Position{
		Line:   strings.Count(src[:off], "\n") + 1,
		Column: utf8.RuneCountInString(src[lineStart:off]) + 1,
	}
}

// Span extracts the source location of err, if it has one.
func Span(err error) (lexer.Span, bool) {
	var loc Locatable
	if errors.As(err, &loc) {
		return loc.Location(), true
	}
	return lexer.Span{}, false
}

// Render writes err to w as "file:line:col: error: message" followed by the
// offending source line with the span underlined.
func Render(w io.Writer, filename, src string, err error, opts Options) error {
	errColor := color.New(color.FgRed, color.Bold)
	gutterColor := color.New(color.FgCyan)
	for _, c := range []*color.Color{errColor, gutterColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	span, ok := Span(err)
	if !ok {
		_, werr := fmt.Fprintf(w, "%s: %s %v\n", filename, errColor.Sprint("error:"), err)
		return werr
	}

	pos := Locate(src, span.Start)
	if _, werr := fmt.Fprintf(w, "%s:%v: %s %v\n", filename, pos, errColor.Sprint("error:"), err); werr != nil {
		return werr
	}

	start := clamp(src, span.Start)
	lineStart := strings.LastIndexByte(src[:start], '\n') + 1
	lineEnd := len(src)
	if i := strings.IndexAny(src[lineStart:], "\r\n"); i >= 0 {
		lineEnd = lineStart + i
	}
	if start > lineEnd {
		start = lineEnd
	}
	end := clamp(src, span.End)
	if end > lineEnd {
		end = lineEnd
	}
	if end < start {
		end = start
	}

	num := strconv.Itoa(pos.Line)
	pad := strings.Repeat(" ", len(num))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", pad, gutterColor.Sprint("|"))
	fmt.Fprintf(&b, "%s %s %s\n", gutterColor.Sprint(num), gutterColor.Sprint("|"), src[lineStart:lineEnd])
	fmt.Fprintf(&b, "%s %s %s%s\n", pad, gutterColor.Sprint("|"), indentFor(src[lineStart:start]), errColor.Sprint(underline(src[start:end])))

	_, werr := io.WriteString(w, b.String())
	return werr
}

// indentFor returns blanks as wide as s, keeping tabs so the caret lines
// up with the source line whatever the tab width.
func indentFor(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteRune('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func underline(s string) string {
	n := runewidth.StringWidth(s)
	if n < 1 {
		n = 1
	}
	return "^" + strings.Repeat("~", n-1)
}

func clamp(src string, offset uint32) int {
	if int(offset) > len(src) {
		return len(src)
	}
	return int(offset)
}
