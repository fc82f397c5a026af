package troop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/dba/element"
)

var ErrTooManyPermutations = errors.New("too many permutations")

// EmptyInputError reports a definition with nothing to parse. Reason is one
// of "null", "empty" or "blank".
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return "troop definition is " + e.Reason
}

// LexError reports a fragment of input that is not a token.
type LexError struct {
	Fragment   string
	Pos        Position
	Suggestion string
}

func newLexError(tok Token) *LexError {
	return &LexError{
		Fragment:   tok.Literal,
		Pos:        tok.Span.Start,
		Suggestion: element.Suggest(tok.Literal),
	}
}

func (e *LexError) Error() string {
	msg := fmt.Sprintf("Lex error at %s: unrecognised '%s'", e.Pos, e.Fragment)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean '%s'?", e.Suggestion)
	}
	return msg
}

type ParseError struct {
	Message  string
	Got      Token
	Expected []TokenKind
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parse error at %s", e.Got.Span.Start)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	fmt.Fprintf(&b, ": got %s", e.Got)
	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ", expecting %s", e.Expected[0])
	default:
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		fmt.Fprintf(&b, ", expecting one of {%s}", strings.Join(names, ", "))
	}
	return b.String()
}

// CardinalityError reports a third operand given to '/' or '//'.
type CardinalityError struct {
	Operator string
	Pos      Position
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("Parse error at %s: operator '%s' has cardinality 2, found a third operand", e.Pos, e.Operator)
}
