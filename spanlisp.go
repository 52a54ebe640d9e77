// Package spanlisp reads a minimal Lisp dialect (integers, symbols, if,
// define and calls) into a syntax tree whose nodes remember where in the
// source they came from.
//
// The work is split between three packages: lexer turns text into spanned
// tokens, parser runs a recursive descent over them and ast holds the
// resulting tree. This package wires them together for the common case.
package spanlisp

import (
	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/lexer"
	"github.com/xiam/spanlisp/parser"
)

// Tokenize returns the tokens of src, dropping whitespace and comments.
func Tokenize(src string, opts ...lexer.Option) ([]lexer.Token, error) {
	return lexer.Tokenize(src, opts...)
}

// Parse returns the first expression of src.
func Parse(src string, opts ...lexer.Option) (ast.Expr, error) {
	return parser.Parse(src, opts...)
}

// ParseAll returns every top-level expression of src.
func ParseAll(src string, opts ...lexer.Option) ([]ast.Expr, error) {
	return parser.ParseAll(src, opts...)
}
