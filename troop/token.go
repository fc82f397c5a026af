package troop

import "fmt"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenUnit
	TokenInt
	TokenTimes
	TokenComma
	TokenPlus
	TokenOr
	TokenSlash
	TokenDoubleSlash
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenUnit:        "UNIT_CODE",
	TokenInt:         "INTEGER",
	TokenTimes:       "'x'",
	TokenComma:       "','",
	TokenPlus:        "'+'",
	TokenOr:          "'or'",
	TokenSlash:       "'/'",
	TokenDoubleSlash: "'//'",
	TokenLParen:      "'('",
	TokenRParen:      "')'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "<EOF>"
	}
	return "'" + t.Literal + "'"
}
