package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/spanlisp/ast"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "spanlisp.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`color = "off"`), 0o644))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.lisp", "(define x (f 1 2)) (g)")

	stdout, stderr, err := run(t, "parse", "--format", "sexpr", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "(define x (f 1 2))\n", stdout)

	stdout, _, err = run(t, "parse", "--format", "sexpr", "--all", path)
	require.NoError(t, err)
	assert.Equal(t, "(define x (f 1 2))\n(g)\n", stdout)

	stdout, _, err = run(t, "parse", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "(define): [0..18]"))
}

func TestParseCommandFormats(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.lisp", "(if a 1 2)")

	stdout, _, err := run(t, "parse", "--format", "json", path)
	require.NoError(t, err)

	var out []ast.Dump
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "if", out[0].Type)

	stdout, _, err = run(t, "parse", "--format", "msgpack", path)
	require.NoError(t, err)

	dumps, err := ast.DecodeMsgpack(strings.NewReader(stdout))
	require.NoError(t, err)
	require.Len(t, dumps, 1)
	assert.Len(t, dumps[0].Children, 3)

	_, _, err = run(t, "parse", "--format", "xml", path)
	assert.Error(t, err)
}

func TestParseCommandDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.lisp", "(a)")
	writeSource(t, dir, "b.lisp", "(b")

	stdout, stderr, err := run(t, "parse", "--format", "sexpr", dir)
	assert.Equal(t, errSyntax, err)
	assert.Contains(t, stdout, "== "+filepath.Join(dir, "a.lisp")+" ==\n(a)\n")
	assert.Contains(t, stderr, "b.lisp:1:3: error: unexpected end of input at 2..2")
}

func TestTokenizeCommand(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.lisp", "(f 12) ; call")

	stdout, _, err := run(t, "tokenize", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], `number`)
	assert.Contains(t, lines[2], `"12"`)

	stdout, _, err = run(t, "tokenize", "--format", "json", path)
	require.NoError(t, err)

	var out []tokenPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out, 4)
	assert.Equal(t, "number", out[2].Kind)
	require.NotNil(t, out[2].Value)
	assert.Equal(t, int64(12), *out[2].Value)

	bad := writeSource(t, t.TempDir(), "bad.lisp", "(f #)")
	_, stderr, err := run(t, "tokenize", bad)
	assert.Equal(t, errSyntax, err)
	assert.Contains(t, stderr, "invalid character")

	stdout, _, err = run(t, "--lenient", "tokenize", bad)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 2)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "spanlisp")
	assert.Contains(t, stdout, Version)
}
