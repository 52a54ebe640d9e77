package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/config"
	"github.com/xiam/spanlisp/diag"
	"github.com/xiam/spanlisp/driver"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.lisp|directory>...",
		Short: "Parse source files and print their syntax trees",
		Long:  `Parse reads source files, or every *.lisp file under the given directories, and prints their syntax trees`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, a, args)
		},
	}
	cmd.Flags().String("format", config.FormatPretty, "output format (pretty|sexpr|json|msgpack)")
	cmd.Flags().Bool("all", false, "parse every top-level expression, not only the first one")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("quiet", false, "do not print file headers")
	return cmd
}

func runParse(cmd *cobra.Command, a *app, args []string) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	paths, err := driver.ExpandPaths(args)
	if err != nil {
		return err
	}

	results, err := driver.ParseFiles(cmd.Context(), paths, a.driverOptions())
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	diagOpts := a.diagOptions(stderr)

	failed := false
	for _, res := range results {
		if res.Failed() {
			failed = true
			if err := diag.Render(stderr, res.Path, res.Source, res.Err, diagOpts); err != nil {
				return err
			}
		}
	}

	switch a.cfg.Format {
	case config.FormatJSON, config.FormatMsgpack:
		var exprs []ast.Expr
		for _, res := range results {
			exprs = append(exprs, res.Exprs...)
		}
		if a.cfg.Format == config.FormatJSON {
			err = ast.EncodeJSON(stdout, exprs...)
		} else {
			err = ast.EncodeMsgpack(stdout, exprs...)
		}
		if err != nil {
			return err
		}

	default:
		showHeaders := !quiet && len(results) > 1
		for _, res := range results {
			if res.Failed() {
				continue
			}
			if showHeaders {
				if _, err := fmt.Fprintf(stdout, "== %s ==\n", res.Path); err != nil {
					return err
				}
			}
			if err := printExprs(stdout, a.cfg.Format, res.Exprs); err != nil {
				return err
			}
		}
	}

	if failed {
		return errSyntax
	}
	return nil
}

func printExprs(w io.Writer, format string, exprs []ast.Expr) error {
	for _, e := range exprs {
		if format == config.FormatSexpr {
			if _, err := fmt.Fprintf(w, "%s\n", ast.Encode(e)); err != nil {
				return err
			}
			continue
		}
		if err := ast.Fprint(w, e); err != nil {
			return err
		}
	}
	return nil
}
