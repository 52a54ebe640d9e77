package parser

import (
	"github.com/xiam/spanlisp/ast"
	"github.com/xiam/spanlisp/lexer"
)

const (
	keywordIf     = "if"
	keywordDefine = "define"
)

// Parser builds syntax trees out of a token stream using one token of
// lookahead.
type Parser struct {
	tokens []lexer.Token
	pos    int

	eof lexer.Span
}

// New creates a parser over tokens. Errors about missing input are
// reported right after the last token.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	if n := len(tokens); n > 0 {
		end := tokens[n-1].Span().End
		p.eof = lexer.Span{Start: end, End: end}
	}
	return p
}

func newFromSource(src string, opts ...lexer.Option) (*Parser, error) {
	tokens, err := lexer.Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	p := New(tokens)
	// Tokenize already rejected sources whose length does not fit a span.
	p.eof, _ = lexer.NewSpan(len(src), len(src))
	return p, nil
}

// More returns true if there are tokens left to parse.
func (p *Parser) More() bool {
	return p.peek() != nil
}

func (p *Parser) peek() *lexer.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *Parser) errorAt(err error, tok *lexer.Token) error {
	if tok == nil {
		return &Error{Err: err, Span: p.eof}
	}
	return &Error{Err: err, Span: tok.Span(), Token: tok}
}

// ParseExpr parses the next expression.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.errorAt(ErrUnexpectedEnd, nil)
	}

	switch tok.Kind() {
	case lexer.TokenLeftBracket:
		return p.parseForm(*tok)
	case lexer.TokenNumber:
		return ast.NewNumber(*tok), nil
	case lexer.TokenSymbol:
		return ast.NewSymbol(*tok), nil
	}

	return nil, p.errorAt(ErrUnexpectedToken, tok)
}

func (p *Parser) parseForm(open lexer.Token) (ast.Expr, error) {
	head := p.peek()
	if head == nil || !head.Is(lexer.TokenSymbol) {
		return nil, p.errorAt(ErrInvalidForm, head)
	}

	switch head.Text() {
	case keywordIf:
		return p.parseIf(open)
	case keywordDefine:
		return p.parseDefine(open)
	}
	return p.parseCall(open)
}

func (p *Parser) parseIf(open lexer.Token) (ast.Expr, error) {
	keyword := *p.next()

	var branches [3]ast.Expr
	for i := range branches {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		branches[i] = expr
	}

	closing, err := p.expectClose()
	if err != nil {
		return nil, err
	}

	return &ast.If{
		Open:    open,
		Keyword: keyword,
		Cond:    branches[0],
		Then:    branches[1],
		Else:    branches[2],
		Close:   closing,
	}, nil
}

func (p *Parser) parseDefine(open lexer.Token) (ast.Expr, error) {
	keyword := *p.next()

	name := p.next()
	if name == nil {
		return nil, p.errorAt(ErrUnexpectedEnd, nil)
	}

	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	closing, err := p.expectClose()
	if err != nil {
		return nil, err
	}

	return &ast.Define{
		Open:    open,
		Keyword: keyword,
		Name:    *name,
		Value:   value,
		Close:   closing,
	}, nil
}

func (p *Parser) parseCall(open lexer.Token) (ast.Expr, error) {
	callee := *p.next()

	args := []ast.Expr{}
	for {
		tok := p.peek()
		if tok == nil || tok.Is(lexer.TokenRightBracket) {
			break
		}
		arg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	closing, err := p.expectClose()
	if err != nil {
		return nil, err
	}

	return &ast.Call{
		Open:   open,
		Callee: callee,
		Args:   args,
		Close:  closing,
	}, nil
}

func (p *Parser) expectClose() (lexer.Token, error) {
	tok := p.next()
	if tok == nil {
		return lexer.Token{}, p.errorAt(ErrUnexpectedEnd, nil)
	}
	if !tok.Is(lexer.TokenRightBracket) {
		return lexer.Token{}, p.errorAt(ErrUnexpectedToken, tok)
	}
	return *tok, nil
}

// Parse tokenizes src and returns the expression that starts at its first
// token. Tokens after that expression are not looked at.
func Parse(src string, opts ...lexer.Option) (ast.Expr, error) {
	p, err := newFromSource(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseExpr()
}

// ParseAll tokenizes src and parses every top-level expression in it.
func ParseAll(src string, opts ...lexer.Option) ([]ast.Expr, error) {
	p, err := newFromSource(src, opts...)
	if err != nil {
		return nil, err
	}

	exprs := []ast.Expr{}
	for p.More() {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}
