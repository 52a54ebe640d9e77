package main

import (
	"io"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xiam/spanlisp/config"
	"github.com/xiam/spanlisp/diag"
	"github.com/xiam/spanlisp/driver"
)

// errSyntax is returned once the diagnostics have already been printed.
var errSyntax = errors.New("syntax errors found")

type app struct {
	cfg config.Config
	log slog.Logger
}

func (a *app) load(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}

	a.cfg = config.Default()
	if path == "" {
		if path, _, err = config.Find("."); err != nil {
			return err
		}
	}
	if path != "" {
		if a.cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	if flags.Changed("color") {
		if a.cfg.Color, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if flags.Changed("verbose") {
		if a.cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
			return err
		}
	}
	if flags.Changed("lenient") {
		if a.cfg.Lenient, err = flags.GetBool("lenient"); err != nil {
			return err
		}
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		a.cfg.Format = f.Value.String()
	}
	if flags.Changed("all") {
		if a.cfg.All, err = flags.GetBool("all"); err != nil {
			return err
		}
	}
	if flags.Changed("jobs") {
		if a.cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}

	if a.cfg.Verbose {
		a.log = logger.NewFromOptions(&logger.Options{
			SyncWriter: os.Stderr,
		})
	} else {
		a.log = logger.NewNopLogger()
	}

	if path != "" {
		a.log.Debug("using config " + path)
	}
	return a.cfg.Validate()
}

func (a *app) driverOptions() driver.Options {
	return driver.Options{
		Jobs:    a.cfg.Jobs,
		All:     a.cfg.All,
		Lenient: a.cfg.Lenient,
		Logger:  a.log,
	}
}

func (a *app) diagOptions(w io.Writer) diag.Options {
	return diag.Options{Color: a.useColor(w)}
}

func (a *app) useColor(w io.Writer) bool {
	switch a.cfg.Color {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	return isTerminal(w)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
