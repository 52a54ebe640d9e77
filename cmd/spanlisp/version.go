package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information, overridable at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

var (
	versionNameColor = color.New(color.FgYellow, color.Bold)
	versionNumColor  = color.New(color.FgGreen, color.Bold)
)

func versionString(full bool) string {
	s := Version
	if full {
		if GitCommit != "" {
			s += " (" + GitCommit + ")"
		}
		if BuildDate != "" {
			s += " built " + BuildDate
		}
	}
	return s
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show spanlisp version",
		RunE: func(cmd *cobra.Command, args []string) error {
			full, err := cmd.Flags().GetBool("full")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				versionNameColor.Sprint("spanlisp"),
				versionNumColor.Sprint(versionString(full)))
			return err
		},
	}
	cmd.Flags().Bool("full", false, "include commit and build date")
	return cmd
}
