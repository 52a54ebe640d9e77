package ast

// ExprType represents the type of an AST node
type ExprType uint8

// Expression types
const (
	ExprInvalid ExprType = iota
	ExprNumber
	ExprSymbol
	ExprIf
	ExprDefine
	ExprCall
)

func (et ExprType) String() string {
	s, ok := exprTypeName[et]
	if ok {
		return s
	}
	return exprTypeName[ExprInvalid]
}

// IsForm returns true for types that are written as a parenthesized form.
func (et ExprType) IsForm() bool {
	return et == ExprIf || et == ExprDefine || et == ExprCall
}

var exprTypeName = map[ExprType]string{
	ExprInvalid: "invalid",
	ExprNumber:  "number",
	ExprSymbol:  "symbol",
	ExprIf:      "if",
	ExprDefine:  "define",
	ExprCall:    "call",
}
