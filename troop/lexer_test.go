package troop

import (
	"errors"
	"testing"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
	}{
		{"Cv", []TokenKind{TokenUnit, TokenEOF}},
		{"4Wb", []TokenKind{TokenUnit, TokenEOF}},
		{"7x4Wb", []TokenKind{TokenInt, TokenTimes, TokenUnit, TokenEOF}},
		{"3/4Bw", []TokenKind{TokenInt, TokenSlash, TokenUnit, TokenEOF}},
		{"Kn//Sp", []TokenKind{TokenUnit, TokenDoubleSlash, TokenUnit, TokenEOF}},
		{"Ax or Hd", []TokenKind{TokenUnit, TokenOr, TokenUnit, TokenEOF}},
		{"AxorHd", []TokenKind{TokenUnit, TokenOr, TokenUnit, TokenEOF}},
		{"Gen+Bd", []TokenKind{TokenUnit, TokenPlus, TokenUnit, TokenEOF}},
		{" ( Ps ) ", []TokenKind{TokenLParen, TokenUnit, TokenRParen, TokenEOF}},
		{"12xPs", []TokenKind{TokenInt, TokenTimes, TokenUnit, TokenEOF}},
		{"3/500Ax", []TokenKind{TokenInt, TokenSlash, TokenInt, TokenUnit, TokenEOF}},
		{"Kn/(2xLCh or WWg)", []TokenKind{
			TokenUnit, TokenSlash, TokenLParen, TokenInt, TokenTimes,
			TokenUnit, TokenOr, TokenUnit, TokenRParen, TokenEOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error: %v", err)
			}
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.kinds), tokens)
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: got %v, want %v", i, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestLexerLongestCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Mtd-3Bw", "Mtd-3Bw"},
		{"LCh", "LCh"},
		{"LCm", "LCm"},
		{"6Kn", "6Kn"},
		{"CWg", "CWg"},
		{"WWg", "WWg"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer(tt.input).NextToken()
			if tok.Kind != TokenUnit || tok.Literal != tt.want {
				t.Errorf("got %v %q, want UNIT_CODE %q", tok.Kind, tok.Literal, tt.want)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	l := NewLexer("Cv,\n  Ps")
	want := []Position{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 6, Line: 2, Column: 3},
	}
	for i, pos := range want {
		tok := l.NextToken()
		if tok.Span.Start != pos {
			t.Errorf("token %d at %+v, want %+v", i, tok.Span.Start, pos)
		}
	}
}

func TestLexerError(t *testing.T) {
	_, err := NewLexer("Cv,Zq-x,Ps").Tokenize()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v, want *LexError", err)
	}
	if lexErr.Fragment != "Zq-x" {
		t.Errorf("Fragment = %q, want %q", lexErr.Fragment, "Zq-x")
	}
	if lexErr.Pos.Column != 4 {
		t.Errorf("Column = %d, want 4", lexErr.Pos.Column)
	}
}

func TestLexerErrorSuggestion(t *testing.T) {
	_, err := NewLexer("WW").Tokenize()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v, want *LexError", err)
	}
	if lexErr.Suggestion != "WWg" {
		t.Errorf("Suggestion = %q, want WWg", lexErr.Suggestion)
	}
}
