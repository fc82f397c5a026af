package troop

import (
	"strings"

	"github.com/dhamidi/dba/element"
)

// vocabulary is ordered longest first so the first prefix hit is the
// longest one.
var vocabulary = element.Vocabulary()

type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.peek()) {
		l.advance()
	}
}

// NextToken returns the next significant token. Whitespace is never
// returned. An unrecognised fragment comes back as a TokenError whose
// literal is the whole fragment.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	if code := l.matchCode(); code != "" {
		l.advanceN(len(code))
		return l.token(TokenUnit, start)
	}

	ch := l.peek()
	if isDigit(ch) {
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.token(TokenInt, start)
	}

	switch ch {
	case 'x':
		l.advance()
		return l.token(TokenTimes, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case '+':
		l.advance()
		return l.token(TokenPlus, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '/':
		if l.peekN(1) == '/' {
			l.advanceN(2)
			return l.token(TokenDoubleSlash, start)
		}
		l.advance()
		return l.token(TokenSlash, start)
	case 'o':
		if l.peekN(1) == 'r' {
			l.advanceN(2)
			return l.token(TokenOr, start)
		}
	}

	for l.pos < len(l.input) && !isSpace(l.peek()) && !isDelimiter(l.peek()) {
		l.advance()
	}
	if l.pos == start.Offset {
		l.advance()
	}
	return l.token(TokenError, start)
}

// Tokenize scans the whole input. The returned slice always ends with an
// EOF token unless a lex error stopped the scan.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Kind == TokenError {
			return tokens, newLexError(tok)
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) matchCode() string {
	rest := l.input[l.pos:]
	for _, code := range vocabulary {
		if strings.HasPrefix(rest, code) {
			return code
		}
	}
	return ""
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: l.input[start.Offset:end.Offset],
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDelimiter(ch byte) bool {
	switch ch {
	case ',', '+', '/', '(', ')':
		return true
	}
	return false
}
