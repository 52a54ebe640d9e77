package diag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/spanlisp/lexer"
	"github.com/xiam/spanlisp/parser"
)

func TestLocate(t *testing.T) {
	src := "(f\n  a\n\tbé c)"

	testCases := []struct {
		Offset uint32
		Pos    Position
	}{
		{0, Position{1, 1}},
		{1, Position{1, 2}},
		{3, Position{2, 1}},
		{5, Position{2, 3}},
		{8, Position{3, 2}},
		{12, Position{3, 5}},
		{100, Position{3, 7}},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Pos, Locate(src, testCases[i].Offset), "offset %d", testCases[i].Offset)
	}
	assert.Equal(t, "3:5", Locate(src, 12).String())
}

func TestRender(t *testing.T) {
	src := "(define x\n  (if 1 2 3 4))"

	_, err := parser.Parse(src)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "test.lisp", src, err, Options{}))

	expected := strings.Join([]string{
		`test.lisp:2:13: error: unexpected token "4" at 22..23`,
		`  |`,
		`2 |   (if 1 2 3 4))`,
		`  | `+strings.Repeat(" ", 12)+`^`,
		``,
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestRenderWideSpan(t *testing.T) {
	src := "\t(f 99999999999999999999)"

	_, err := parser.Parse(src)
	require.True(t, errors.Is(err, lexer.ErrNumberOverflow))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "wide.lisp", src, err, Options{}))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "  | \t   ^"+strings.Repeat("~", 19), lines[3])
}

func TestRenderEndOfInput(t *testing.T) {
	src := "(f a\n"

	_, err := parser.Parse(src)
	require.True(t, errors.Is(err, parser.ErrUnexpectedEnd))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "eof.lisp", src, err, Options{}))
	assert.True(t, strings.HasPrefix(buf.String(), "eof.lisp:2:1: error: unexpected end of input at 5..5\n"))
}

func TestRenderWithoutLocation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "x.lisp", "", errors.New("boom"), Options{}))
	assert.Equal(t, "x.lisp: error: boom\n", buf.String())
}

func TestRenderColor(t *testing.T) {
	_, err := parser.Parse(")")
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "c.lisp", ")", err, Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}
