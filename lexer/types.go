package lexer

import (
	"unicode"
)

// TokenKind represents all the possible kinds of a lexical unit
type TokenKind uint8

// List of kinds of lexical units
const (
	TokenInvalid      TokenKind = iota
	TokenLeftBracket            // Open parenthesis: "("
	TokenRightBracket           // Close parenthesis: ")"
	TokenNumber                 // Run of ASCII digits
	TokenSymbol                 // Names and operator-like identifiers
)

var tokenNames = map[TokenKind]string{
	TokenInvalid:      "invalid",
	TokenLeftBracket:  "left_bracket",
	TokenRightBracket: "right_bracket",
	TokenNumber:       "number",
	TokenSymbol:       "symbol",
}

func (tk TokenKind) String() string {
	if v, ok := tokenNames[tk]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// charClass is the class a token's first character puts the scanner in.
type charClass uint8

const (
	classInvalid charClass = iota
	classLeftBracket
	classRightBracket
	classDigit
	classSymbol
	classComment
)

var classValues = map[charClass][]rune{
	classLeftBracket:  []rune{'('},
	classRightBracket: []rune{')'},
	classDigit:        []rune("0123456789"),
	classSymbol:       []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!%&*+-./:<=>?@$^"),
	classComment:      []rune{';'},
}

func isClass(c charClass) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range classValues[c] {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isLeftBracket  = isClass(classLeftBracket)
	isRightBracket = isClass(classRightBracket)
	isDigit        = isClass(classDigit)
	isSymbolStart  = isClass(classSymbol)
	isCommentStart = isClass(classComment)
)

func isSymbolBody(r rune) bool {
	return isSymbolStart(r) || isDigit(r)
}

func isCommentBody(r rune) bool {
	return r != '\r' && r != '\n'
}

func isWhitespace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}
