package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xiam/spanlisp/config"
	"github.com/xiam/spanlisp/diag"
	"github.com/xiam/spanlisp/driver"
	"github.com/xiam/spanlisp/lexer"
)

func newTokenizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.lisp",
		Short: "Tokenize a source file",
		Long:  `Tokenize breaks down a source file into its tokens, dropping whitespace and comments`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, a, args[0])
		},
	}
	cmd.Flags().String("format", config.FormatPretty, "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, a *app, path string) error {
	res, err := driver.TokenizeFile(path, a.driverOptions())
	if err != nil {
		return err
	}

	if res.Failed() {
		stderr := cmd.ErrOrStderr()
		if err := diag.Render(stderr, res.Path, res.Source, res.Err, a.diagOptions(stderr)); err != nil {
			return err
		}
		return errSyntax
	}

	if a.cfg.Format == config.FormatJSON {
		return formatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	}
	return formatTokensPretty(cmd.OutOrStdout(), res.Tokens, res.Source)
}

func formatTokensPretty(w io.Writer, tokens []lexer.Token, src string) error {
	for i, tok := range tokens {
		pos := diag.Locate(src, tok.Span().Start)
		if _, err := fmt.Fprintf(w, "%4d %-7v %-14v %-10v %q\n", i, pos, tok.Kind(), tok.Span(), tok.Text()); err != nil {
			return err
		}
	}
	return nil
}

type tokenPayload struct {
	Kind  string    `json:"kind"`
	Span  [2]uint32 `json:"span"`
	Text  string    `json:"text"`
	Value *int64    `json:"value,omitempty"`
}

func formatTokensJSON(w io.Writer, tokens []lexer.Token) error {
	out := make([]tokenPayload, 0, len(tokens))
	for _, tok := range tokens {
		p := tokenPayload{
			Kind: tok.Kind().String(),
			Span: [2]uint32{tok.Span().Start, tok.Span().End},
			Text: tok.Text(),
		}
		if tok.Is(lexer.TokenNumber) {
			v := tok.Number()
			p.Value = &v
		}
		out = append(out, p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
