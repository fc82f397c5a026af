package lsp

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/dba/element"
	"github.com/dhamidi/dba/troop"
	"github.com/lithammer/fuzzysearch/fuzzy"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// A document holds one troop definition per line. Blank lines and lines
// starting with '#' are ignored.
type document struct {
	uri   string
	lines []string
}

func newDocument(uri, text string) *document {
	return &document{uri: uri, lines: strings.Split(text, "\n")}
}

func isDefinition(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

func (d *document) line(n int) (string, bool) {
	if n < 0 || n >= len(d.lines) {
		return "", false
	}
	return strings.TrimRight(d.lines[n], "\r"), true
}

// Diagnostics parses every definition in text and reports each failure at
// the position the parser gave for it.
func Diagnostics(text string) []protocol.Diagnostic {
	doc := newDocument("", text)
	diagnostics := []protocol.Diagnostic{}
	for i := range doc.lines {
		line, _ := doc.line(i)
		if !isDefinition(line) {
			continue
		}
		_, err := troop.NewParser(line, troop.WithStartLine(i+1)).Parse()
		if err != nil {
			diagnostics = append(diagnostics, diagnostic(err, i, line))
		}
	}
	return diagnostics
}

func diagnostic(err error, lineIndex int, line string) protocol.Diagnostic {
	start, length := errorLocation(err)
	if start.Line == 0 {
		start = troop.Position{Line: lineIndex + 1, Column: 1}
		length = len(line)
	}
	if length < 1 {
		length = 1
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: lspPosition(start, 0),
			End:   lspPosition(start, length),
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func errorLocation(err error) (troop.Position, int) {
	var parseErr *troop.ParseError
	var lexErr *troop.LexError
	var cardErr *troop.CardinalityError
	switch {
	case errors.As(err, &parseErr):
		return parseErr.Got.Span.Start, parseErr.Got.Span.End.Offset - parseErr.Got.Span.Start.Offset
	case errors.As(err, &lexErr):
		return lexErr.Pos, len(lexErr.Fragment)
	case errors.As(err, &cardErr):
		return cardErr.Pos, len(cardErr.Operator)
	}
	return troop.Position{}, 0
}

// lspPosition converts a one-based troop position to the zero-based form,
// moved right by offset characters.
func lspPosition(pos troop.Position, offset int) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(pos.Column - 1 + offset),
	}
}

// wordAt returns the unit code characters around column and where they
// start.
func wordAt(line string, column int) (string, int) {
	if column > len(line) {
		column = len(line)
	}
	start := column
	for start > 0 && isCodeChar(line[start-1]) {
		start--
	}
	end := column
	for end < len(line) && isCodeChar(line[end]) {
		end++
	}
	return line[start:end], start
}

func isCodeChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// Completions offers unit codes matching the word before column. A leading
// "Nx" count is kept out of the match; element sizes are part of the code.
func Completions(line string, column int) []protocol.CompletionItem {
	word, _ := wordAt(line[:min(column, len(line))], column)
	prefix := word
	if i := strings.IndexFunc(word, func(r rune) bool { return r < '0' || r > '9' }); i > 0 && word[i] == 'x' {
		prefix = word[i+1:]
	}

	codes := element.AllCodes()
	var matches []string
	if prefix == "" {
		matches = codes
	} else {
		ranks := fuzzy.RankFindFold(prefix, codes)
		sort.Stable(ranks)
		for _, r := range ranks {
			matches = append(matches, r.Target)
		}
	}

	kind := protocol.CompletionItemKindConstant
	items := make([]protocol.CompletionItem, 0, len(matches))
	for _, code := range matches {
		detail := ""
		if t, ok := element.TypeOf(code); ok {
			detail = t.ProperCase()
		}
		items = append(items, protocol.CompletionItem{
			Label:  code,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

// Hover describes the definition on line: its normal form, the units it
// names and how many compositions it admits. On a unit code the element
// type comes first.
func Hover(line string, column int) string {
	if !isDefinition(line) {
		return ""
	}
	expr, err := troop.Parse(line)
	if err != nil {
		return err.Error()
	}

	var b strings.Builder
	for _, n := range unitsAt(expr.Root(), column) {
		if t, ok := element.TypeOf(n.Code); ok {
			fmt.Fprintf(&b, "**%s**: %s\n\n", n.Code, t.ProperCase())
		}
	}
	fmt.Fprintf(&b, "`%s`\n\n", expr)
	fmt.Fprintf(&b, "units: %s\n\n", strings.Join(expr.UnitList(), ", "))
	fmt.Fprintf(&b, "compositions: %d", expr.PermutationCount())
	return b.String()
}

// unitsAt returns the unit nodes whose span covers the zero-based column.
func unitsAt(root *troop.Node, column int) []*troop.Node {
	var found []*troop.Node
	troop.Walk(root, func(n *troop.Node) bool {
		if n.Span.Start.Column-1 > column || n.Span.End.Column-1 < column {
			return false
		}
		if n.Kind == troop.KindUnit {
			found = append(found, n)
		}
		return true
	})
	return found
}
