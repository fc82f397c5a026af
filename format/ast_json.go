package format

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/dhamidi/dba/troop"
)

// ASTJSONEncoder writes a troop syntax tree, or the error that prevented
// one, as indented JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *troop.Node) error {
	return e.write(e.MarshalText(node))
}

// EncodeResult encodes the outcome of a parse: the tree on success,
// otherwise the error with its position and expected tokens.
func (e *ASTJSONEncoder) EncodeResult(node *troop.Node, err error) error {
	if err != nil {
		return e.write(json.MarshalIndent(&astJSONNode{Kind: "Error", Error: ErrorToJSON(err)}, "", "  "))
	}
	return e.Encode(node)
}

func (e *ASTJSONEncoder) write(text []byte, err error) error {
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *troop.Node) ([]byte, error) {
	return json.MarshalIndent(NodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Token    string         `json:"token,omitempty"`
	Code     string         `json:"code,omitempty"`
	Count    int            `json:"count,omitempty"`
	Text     string         `json:"text,omitempty"`
	Error    *ASTJSONError  `json:"error,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ASTJSONError describes a failed parse.
type ASTJSONError struct {
	Message    string           `json:"message"`
	Position   *astJSONPosition `json:"position,omitempty"`
	Expected   []string         `json:"expected,omitempty"`
	Got        string           `json:"got,omitempty"`
	Suggestion string           `json:"suggestion,omitempty"`
}

// NodeToJSON converts a tree to its JSON form. Exported for the HTTP API,
// which embeds trees in larger responses.
func NodeToJSON(n *troop.Node) any {
	return nodeToJSON(n)
}

func nodeToJSON(n *troop.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind: n.Kind.String(),
		Code: n.Code,
		Text: n.String(),
	}
	if n.Kind == troop.KindMultiple || n.Kind == troop.KindEitherUnit {
		jn.Count = n.Count
	}

	if n.Span.Start.Line != 0 || n.Span.End.Line != 0 {
		jn.Span = &astJSONSpan{
			Start: astJSONPosition{Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   astJSONPosition{Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
	}

	if n.Token != nil {
		jn.Token = n.Token.Literal
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}

// ErrorToJSON extracts what the troop error types know about a failure.
func ErrorToJSON(err error) *ASTJSONError {
	je := &ASTJSONError{Message: err.Error()}

	var parseErr *troop.ParseError
	var lexErr *troop.LexError
	var cardErr *troop.CardinalityError
	switch {
	case errors.As(err, &parseErr):
		je.Position = &astJSONPosition{Line: parseErr.Got.Span.Start.Line, Column: parseErr.Got.Span.Start.Column}
		je.Got = parseErr.Got.String()
		for _, exp := range parseErr.Expected {
			je.Expected = append(je.Expected, exp.String())
		}
	case errors.As(err, &lexErr):
		je.Position = &astJSONPosition{Line: lexErr.Pos.Line, Column: lexErr.Pos.Column}
		je.Got = lexErr.Fragment
		je.Suggestion = lexErr.Suggestion
	case errors.As(err, &cardErr):
		je.Position = &astJSONPosition{Line: cardErr.Pos.Line, Column: cardErr.Pos.Column}
	}
	return je
}
