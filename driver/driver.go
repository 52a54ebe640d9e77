// Package driver reads source files from disk and runs them through the
// lexer and parser.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/lexer"
	"github.com/xiam/spanlisp/parser"
)

// Extension is the suffix of the files picked up by ListFiles.
const Extension = ".lisp"

// Options controls how files are processed.
type Options struct {
	// Jobs caps the number of files processed at once; 0 means GOMAXPROCS.
	Jobs int
	// All parses every top-level expression instead of only the first one.
	All bool
	// Lenient stops tokenizing at an invalid character instead of failing.
	Lenient bool

	Logger slog.Logger
}

func (o Options) logger() slog.Logger {
	if o.Logger == nil {
		return logger.NewNopLogger()
	}
	return o.Logger
}

func (o Options) lexerOptions() []lexer.Option {
	if o.Lenient {
		return []lexer.Option{lexer.WithLenient()}
	}
	return nil
}

// Result is the outcome of processing one file. Err holds the syntax error,
// if any; Tokens and Exprs are left empty in that case.
type Result struct {
	Path   string
	Source string
	Tokens []lexer.Token
	Exprs  []ast.Expr
	Err    error
}

// Failed returns true if the file could not be processed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

func readSource(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", path)
	}
	return string(buf), nil
}

// TokenizeFile reads path and returns its tokens. The returned error is
// only set for I/O failures.
func TokenizeFile(path string, opts Options) (*Result, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: path, Source: src}
	res.Tokens, res.Err = lexer.Tokenize(src, opts.lexerOptions()...)
	if res.Err != nil {
		opts.logger().Warning(fmt.Sprintf("%s: %v", path, res.Err))
		return res, nil
	}

	opts.logger().Debug(fmt.Sprintf("%s: %d tokens", path, len(res.Tokens)))
	return res, nil
}

// ParseFile reads path and parses it. The returned error is only set for
// I/O failures.
func ParseFile(path string, opts Options) (*Result, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: path, Source: src}
	if opts.All {
		res.Exprs, res.Err = parser.ParseAll(src, opts.lexerOptions()...)
	} else {
		var expr ast.Expr
		if expr, res.Err = parser.Parse(src, opts.lexerOptions()...); res.Err == nil {
			res.Exprs = []ast.Expr{expr}
		}
	}

	if res.Err != nil {
		opts.logger().Warning(fmt.Sprintf("%s: %v", path, res.Err))
		return res, nil
	}

	opts.logger().Debug(fmt.Sprintf("%s: %d expressions", path, len(res.Exprs)))
	return res, nil
}

// ParseFiles parses paths concurrently. Results are returned in the same
// order as paths. Parsing stops at the first I/O error or when ctx is done.
func ParseFiles(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := ParseFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger().Info(fmt.Sprintf("parsed %d files with %d workers", len(paths), jobs))
	return results, nil
}

// ListFiles returns the sorted list of source files under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces every directory in paths by the source files it
// contains.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		st, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", path)
		}
		if !st.IsDir() {
			out = append(out, path)
			continue
		}
		files, err := ListFiles(path)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}
