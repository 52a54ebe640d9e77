package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, FormatPretty, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
format = "json"
jobs = 4
all = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Format: FormatJSON,
		Color:  ColorAuto,
		Jobs:   4,
		All:    true,
	}, cfg)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err string
	}{
		{`format = "xml"`, `unknown format "xml"`},
		{`color = "sometimes"`, `unknown color mode "sometimes"`},
		{`jobs = -1`, `jobs must not be negative`},
		{`colour = "on"`, `unknown keys: colour`},
		{`format = `, `failed to parse TOML`},
	}

	for i := range testCases {
		path := writeFile(t, t.TempDir(), testCases[i].In)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), testCases[i].Err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, ok, err := Find(nested)
	require.NoError(t, err)
	if ok {
		t.Skip("a spanlisp.toml exists above the temporary directory")
	}

	want := writeFile(t, root, `color = "off"`)

	path, ok, err := Find(nested)
	require.NoError(t, err)
	assert.True(t, ok)

	wantAbs, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	gotAbs, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, wantAbs, gotAbs)
}
