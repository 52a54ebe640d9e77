package main

import (
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Settings are loaded before any
// subcommand runs: defaults, then spanlisp.toml, then flags.
func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "spanlisp",
		Short:         "Tokenize and parse spanlisp source files",
		Long:          `spanlisp reads source files and prints their tokens or syntax trees`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
	}
	rootCmd.Version = versionString(false)

	rootCmd.PersistentFlags().String("config", "", "path to spanlisp.toml (default: search from the working directory up)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log progress to stderr")
	rootCmd.PersistentFlags().Bool("lenient", false, "stop quietly at the first invalid character")

	rootCmd.AddCommand(newTokenizeCmd(app))
	rootCmd.AddCommand(newParseCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// main runs the root command and exits with status 1 on any failure.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if err != errSyntax {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}
