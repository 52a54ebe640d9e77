// Package config loads spanlisp.toml, the optional settings file read by
// the command line tool.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileName is the name looked up by Find.
const FileName = "spanlisp.toml"

// Output formats understood by the parse command.
const (
	FormatPretty  = "pretty"
	FormatSexpr   = "sexpr"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds the tool settings. Command line flags take precedence.
type Config struct {
	Format  string `toml:"format"`
	Color   string `toml:"color"`
	Jobs    int    `toml:"jobs"`
	All     bool   `toml:"all"`
	Lenient bool   `toml:"lenient"`
	Verbose bool   `toml:"verbose"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{
		Format: FormatPretty,
		Color:  ColorAuto,
	}
}

// Load reads path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, errors.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatPretty, FormatSexpr, FormatJSON, FormatMsgpack:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return errors.Errorf("unknown color mode %q", c.Color)
	}
	if c.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	return nil
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, errors.Wrapf(err, "failed to stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
