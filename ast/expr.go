package ast

import (
	"fmt"

	"github.com/xiam/spanlisp/lexer"
)

// Expr is a node of the syntax tree. The set of implementations is closed:
// *Number, *Symbol, *If, *Define and *Call.
//
// Nodes keep the tokens that delimit them so callers can point back at the
// source. A tree is built once by the parser and never modified; every child
// belongs to exactly one parent.
type Expr interface {
	Type() ExprType
	Span() lexer.Span

	exprNode()
}

// Number is an integer literal.
type Number struct {
	Token lexer.Token
	Value int64
}

// Symbol is a bare name.
type Symbol struct {
	Token lexer.Token
	Name  string
}

// If is the (if cond then else) special form.
type If struct {
	Open    lexer.Token
	Keyword lexer.Token
	Cond    Expr
	Then    Expr
	Else    Expr
	Close   lexer.Token
}

// Define is the (define name value) special form. Name is whatever token
// followed the keyword; the grammar does not require it to be a symbol.
type Define struct {
	Open    lexer.Token
	Keyword lexer.Token
	Name    lexer.Token
	Value   Expr
	Close   lexer.Token
}

// Call is any other parenthesized form, (callee args...).
type Call struct {
	Open   lexer.Token
	Callee lexer.Token
	Args   []Expr
	Close  lexer.Token
}

// NewNumber creates a number leaf from its token.
func NewNumber(tok lexer.Token) *Number {
	return &Number{Token: tok, Value: tok.Number()}
}

// NewSymbol creates a symbol leaf from its token.
func NewSymbol(tok lexer.Token) *Symbol {
	return &Symbol{Token: tok, Name: tok.Text()}
}

func (*Number) Type() ExprType { return ExprNumber }
func (*Symbol) Type() ExprType { return ExprSymbol }
func (*If) Type() ExprType     { return ExprIf }
func (*Define) Type() ExprType { return ExprDefine }
func (*Call) Type() ExprType   { return ExprCall }

func (n *Number) Span() lexer.Span { return n.Token.Span() }
func (s *Symbol) Span() lexer.Span { return s.Token.Span() }
func (f *If) Span() lexer.Span     { return f.Open.Span().Cover(f.Close.Span()) }
func (d *Define) Span() lexer.Span { return d.Open.Span().Cover(d.Close.Span()) }
func (c *Call) Span() lexer.Span   { return c.Open.Span().Cover(c.Close.Span()) }

func (*Number) exprNode() {}
func (*Symbol) exprNode() {}
func (*If) exprNode()     {}
func (*Define) exprNode() {}
func (*Call) exprNode()   {}

func (n *Number) String() string {
	return fmt.Sprintf("(number): %d", n.Value)
}

func (s *Symbol) String() string {
	return fmt.Sprintf("(symbol): %s", s.Name)
}

func (f *If) String() string {
	return fmt.Sprintf("(if)[%v]", f.Span())
}

func (d *Define) String() string {
	return fmt.Sprintf("(define %s)[%v]", d.Name.Text(), d.Span())
}

func (c *Call) String() string {
	return fmt.Sprintf("(call %s)[%d]", c.Callee.Text(), len(c.Args))
}

// Children returns the sub-expressions of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *If:
		return []Expr{n.Cond, n.Then, n.Else}
	case *Define:
		return []Expr{n.Value}
	case *Call:
		return n.Args
	}
	return nil
}

// Walk traverses the tree rooted at e depth-first, calling fn for every node.
// Children of a node are skipped when fn returns false for it.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}

// Tokens returns the tokens that delimit e itself, not those of its children.
func Tokens(e Expr) []lexer.Token {
	switch n := e.(type) {
	case *Number:
		return []lexer.Token{n.Token}
	case *Symbol:
		return []lexer.Token{n.Token}
	case *If:
		return []lexer.Token{n.Open, n.Keyword, n.Close}
	case *Define:
		return []lexer.Token{n.Open, n.Keyword, n.Name, n.Close}
	case *Call:
		return []lexer.Token{n.Open, n.Callee, n.Close}
	}
	return nil
}
