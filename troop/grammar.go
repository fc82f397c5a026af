package troop

import (
	_ "embed"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarBase string

// GrammarText returns the EBNF description of the language, including the
// unit production listing every code the lexer accepts.
func GrammarText() string {
	var b strings.Builder
	b.WriteString(grammarBase)
	b.WriteString("unit       = ")
	for i, code := range vocabulary {
		if i > 0 {
			b.WriteString("\n           | ")
		}
		b.WriteString(strconv.Quote(code))
	}
	b.WriteString(" .\n")
	return b.String()
}

// Grammar parses and verifies GrammarText with List as start production.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("troop.ebnf", strings.NewReader(GrammarText()))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, "List"); err != nil {
		return nil, err
	}
	return g, nil
}
