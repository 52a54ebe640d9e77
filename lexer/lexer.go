package lexer

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

const eof = rune(-1)

type lexState func(*Lexer) lexState

// Option configures a Lexer.
type Option func(*Lexer)

// WithLenient makes the lexer stop quietly at the first character that
// belongs to no class instead of failing with ErrInvalidCharacter. The
// remainder of the source is dropped.
func WithLenient() Option {
	return func(lx *Lexer) {
		lx.lenient = true
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	src string

	tokens  []Token
	lastErr error

	lenient bool

	start  int
	offset int
}

// New initializes a Lexer over the given source text
func New(src string, opts ...Option) *Lexer {
	lx := &Lexer{
		src:    src,
		tokens: []Token{},
	}
	for _, opt := range opts {
		opt(lx)
	}
	return lx
}

// Tokens returns the tokens scanned so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan runs the lexer until the source is exhausted or an error is found.
func (lx *Lexer) Scan() error {
	if _, err := NewSpan(0, len(lx.src)); err != nil {
		return &Error{Err: ErrSourceTooLarge}
	}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	return lx.lastErr
}

func (lx *Lexer) span() Span {
	// offsets were bounds-checked in Scan
	s, _ := NewSpan(lx.start, lx.offset)
	return s
}

func (lx *Lexer) text() string {
	return lx.src[lx.start:lx.offset]
}

func (lx *Lexer) emit(tok Token) {
	lx.tokens = append(lx.tokens, tok)
	lx.skip()
}

func (lx *Lexer) skip() {
	lx.start = lx.offset
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.offset:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.src[lx.offset:])
	lx.offset += w
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == eof:
		return nil

	case isLeftBracket(r):
		return lexEmit(TokenLeftBracket)
	case isRightBracket(r):
		return lexEmit(TokenRightBracket)

	case isDigit(r):
		return lexCollectStream(isDigit, lexNumber)
	case isSymbolStart(r):
		return lexCollectStream(isSymbolBody, lexEmit(TokenSymbol))

	case isCommentStart(r):
		return lexCollectStream(isCommentBody, lexDiscard)
	case isWhitespace(r):
		return lexCollectStream(isWhitespace, lexDiscard)
	}

	return lexInvalid
}

// lexCollectStream consumes characters for as long as they continue the
// current class, then hands over to done.
func lexCollectStream(continues func(rune) bool, done lexState) lexState {
	return func(lx *Lexer) lexState {
		for {
			p := lx.peek()
			if p == eof || !continues(p) {
				break
			}
			lx.next()
		}
		return done
	}
}

func lexEmit(tk TokenKind) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(NewToken(tk, lx.text(), lx.span()))
		return lexDefaultState
	}
}

func lexNumber(lx *Lexer) lexState {
	text := lx.text()
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return lexStateError(ErrNumberOverflow)
		}
		return lexStateError(err)
	}
	lx.emit(NewNumberToken(n, text, lx.span()))
	return lexDefaultState
}

func lexDiscard(lx *Lexer) lexState {
	lx.skip()
	return lexDefaultState
}

func lexInvalid(lx *Lexer) lexState {
	if lx.lenient {
		return nil
	}
	return lexStateError(ErrInvalidCharacter)
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = &Error{
			Err:  err,
			Span: lx.span(),
			Text: lx.text(),
		}
		return nil
	}
}

// Tokenize takes a source text and returns all the tokens within it, or an
// error if a token can't be identified.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	lx := New(src, opts...)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
