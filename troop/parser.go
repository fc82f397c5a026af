package troop

import (
	"strconv"
	"strings"

	"github.com/dhamidi/dba/element"
)

type Option func(*Parser)

// WithStartLine makes positions in errors and spans count from line, for
// input taken out of a larger document.
func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

var operandStart = []TokenKind{TokenUnit, TokenInt, TokenLParen}

type Parser struct {
	input     string
	startLine int
	tokens    []Token
	pos       int
}

func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		input:     input,
		startLine: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse lexes and parses the whole input. Either a complete tree or an
// error is returned, never both.
func (p *Parser) Parse() (*Node, error) {
	lexer := NewLexer(p.input)
	lexer.line = p.startLine
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.pos = 0

	root, err := p.parseList()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenEOF) {
		return nil, p.errorf("unexpected input after expression",
			TokenComma, TokenOr, TokenPlus, TokenSlash, TokenDoubleSlash, TokenEOF)
	}
	return root, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) errorf(msg string, expected ...TokenKind) *ParseError {
	return &ParseError{
		Message:  msg,
		Got:      p.peek(),
		Expected: expected,
	}
}

func (p *Parser) startNode(kind NodeKind, first *Node) *Node {
	return &Node{
		Kind:  kind,
		Span:  Span{Start: first.Span.Start},
		Token: first.Token,
	}
}

func (p *Parser) finishNode(n *Node) *Node {
	if p.pos > 0 && p.pos <= len(p.tokens) {
		n.Span.End = p.tokens[p.pos-1].Span.End
	}
	return n
}

// parseSequence parses operands separated by sep, flattening them into one
// node of kind. A single operand is returned unwrapped.
func (p *Parser) parseSequence(kind NodeKind, sep TokenKind, next func() (*Node, error)) (*Node, error) {
	first, err := next()
	if err != nil {
		return nil, err
	}
	if !p.check(sep) {
		return first, nil
	}
	n := p.startNode(kind, first)
	n.AddChild(first)
	for p.check(sep) {
		p.advance()
		operand, err := next()
		if err != nil {
			return nil, err
		}
		n.AddChild(operand)
	}
	return p.finishNode(n), nil
}

func (p *Parser) parseList() (*Node, error) {
	return p.parseSequence(KindList, TokenComma, p.parseOr)
}

func (p *Parser) parseOr() (*Node, error) {
	return p.parseSequence(KindOr, TokenOr, p.parseAnd)
}

func (p *Parser) parseAnd() (*Node, error) {
	return p.parseSequence(KindAnd, TokenPlus, p.parseEither)
}

func (p *Parser) parseEither() (*Node, error) {
	return p.parsePair(KindEither, TokenSlash, "/", p.parseDismount)
}

func (p *Parser) parseDismount() (*Node, error) {
	return p.parsePair(KindDismount, TokenDoubleSlash, "//", p.parseOperand)
}

// parsePair parses a strictly binary operator. A third operand at the same
// level is a cardinality error. The "3/4Wb" shorthand already holds two
// operands of "/", so it takes no further one.
func (p *Parser) parsePair(kind NodeKind, op TokenKind, symbol string, next func() (*Node, error)) (*Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	if !p.check(op) {
		return left, nil
	}
	if kind == KindEither && left.Kind == KindEitherUnit {
		return nil, &CardinalityError{Operator: symbol, Pos: p.peek().Span.Start}
	}
	opTok := p.advance()
	right, err := next()
	if err != nil {
		return nil, err
	}
	if p.check(op) {
		return nil, &CardinalityError{Operator: symbol, Pos: p.peek().Span.Start}
	}
	if kind == KindEither && right.Kind == KindEitherUnit {
		return nil, &CardinalityError{Operator: symbol, Pos: opTok.Span.Start}
	}
	n := p.startNode(kind, left)
	n.AddChild(left)
	n.AddChild(right)
	return p.finishNode(n), nil
}

func (p *Parser) parseOperand() (*Node, error) {
	switch p.peek().Kind {
	case TokenUnit:
		tok := p.advance()
		return &Node{
			Kind:  KindUnit,
			Span:  tok.Span,
			Token: &tok,
			Code:  tok.Literal,
		}, nil
	case TokenLParen:
		return p.parseGroup()
	case TokenInt:
		return p.parseCounted()
	}
	return nil, p.errorf("", operandStart...)
}

func (p *Parser) parseGroup() (*Node, error) {
	tok := p.advance()
	n := &Node{Kind: KindGroup, Span: Span{Start: tok.Span.Start}, Token: &tok}
	inner, err := p.parseList()
	if err != nil {
		return nil, err
	}
	n.AddChild(inner)
	if !p.check(TokenRParen) {
		return nil, p.errorf("unclosed group", TokenRParen)
	}
	p.advance()
	return p.finishNode(n), nil
}

// parseCounted handles the two productions that start with an integer:
// a multiple "3xPs" and the either-unit shorthand "3/4Wb".
func (p *Parser) parseCounted() (*Node, error) {
	count, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	tok := p.advance()

	switch p.peek().Kind {
	case TokenTimes:
		p.advance()
		inner, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		n := &Node{Kind: KindMultiple, Span: Span{Start: tok.Span.Start}, Token: &tok, Count: count}
		n.AddChild(inner)
		return p.finishNode(n), nil
	case TokenSlash:
		p.advance()
		return p.parseEitherUnit(tok, count)
	}
	return nil, p.errorf("", TokenTimes, TokenSlash)
}

func (p *Parser) parseCount() (int, error) {
	tok := p.peek()
	count, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return 0, p.errorf("count out of range", TokenInt)
	}
	if count < 1 {
		return 0, p.errorf("count must be positive", TokenInt)
	}
	return count, nil
}

func (p *Parser) parseEitherUnit(countTok Token, count int) (*Node, error) {
	if !p.check(TokenUnit) {
		return nil, p.errorf("", TokenUnit)
	}
	right := p.peek()
	digits := len(right.Literal) - len(strings.TrimLeft(right.Literal, "0123456789"))
	if digits == 0 {
		return nil, p.errorf("'"+right.Literal+"' has no count prefix", TokenUnit)
	}
	base := right.Literal[digits:]
	left := countTok.Literal + base
	if !element.IsCode(left) {
		return nil, p.errorf("'"+left+"' is not a unit code", TokenUnit)
	}
	p.advance()

	n := &Node{
		Kind:  KindEitherUnit,
		Span:  Span{Start: countTok.Span.Start},
		Token: &countTok,
		Code:  base,
		Count: count,
	}
	n.AddChild(&Node{Kind: KindUnit, Span: countTok.Span, Token: &countTok, Code: left})
	n.AddChild(&Node{Kind: KindUnit, Span: right.Span, Token: &right, Code: right.Literal})
	return p.finishNode(n), nil
}
