package troop

import (
	"strconv"
	"strings"
)

type NodeKind int

const (
	KindUnit NodeKind = iota
	KindList
	KindMultiple
	KindGroup
	KindAnd
	KindOr
	KindEither
	KindEitherUnit
	KindDismount
)

var nodeKindNames = map[NodeKind]string{
	KindUnit:       "Unit",
	KindList:       "List",
	KindMultiple:   "Multiple",
	KindGroup:      "Group",
	KindAnd:        "And",
	KindOr:         "Or",
	KindEither:     "Either",
	KindEitherUnit: "EitherUnit",
	KindDismount:   "Dismount",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is one element of a troop expression tree.
//
// Unit carries Code. Multiple carries Count and one child. EitherUnit
// carries the left Count, the shared base in Code and two Unit children
// holding the expanded codes, so "3/4Wb" has children 3Wb and 4Wb.
// Either and Dismount have exactly two children, And and Or at least two.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
	Code     string
	Count    int
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// Children returns the immediate sub-expressions of n.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// IsDisjunction reports whether n offers alternatives.
func (n *Node) IsDisjunction() bool {
	switch n.Kind {
	case KindOr, KindEither, KindEitherUnit:
		return true
	}
	return false
}

// IsGround reports whether n contains no disjunction at any depth.
func (n *Node) IsGround() bool {
	if n.IsDisjunction() {
		return false
	}
	for _, child := range n.Children {
		if !child.IsGround() {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants in tree order until fn returns false.
// The expanded Unit children of an EitherUnit are visited too.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// String prints n in surface syntax without whitespace.
func (n *Node) String() string {
	var b strings.Builder
	n.print(&b)
	return b.String()
}

func (n *Node) print(b *strings.Builder) {
	switch n.Kind {
	case KindUnit:
		b.WriteString(n.Code)
	case KindMultiple:
		b.WriteString(strconv.Itoa(n.Count))
		b.WriteByte('x')
		n.Children[0].print(b)
	case KindGroup:
		b.WriteByte('(')
		n.Children[0].print(b)
		b.WriteByte(')')
	case KindEitherUnit:
		b.WriteString(strconv.Itoa(n.Count))
		b.WriteByte('/')
		b.WriteString(n.Children[1].Code)
	default:
		sep := separators[n.Kind]
		for i, child := range n.Children {
			if i > 0 {
				b.WriteString(sep)
			}
			child.print(b)
		}
	}
}

var separators = map[NodeKind]string{
	KindList:     ",",
	KindAnd:      "+",
	KindOr:       "or",
	KindEither:   "/",
	KindDismount: "//",
}

// Dump returns an indented tree listing, one node per line.
func (n *Node) Dump() string {
	return n.dumpIndent(0, false)
}

func (n *Node) DumpWithPositions() string {
	return n.dumpIndent(0, true)
}

func (n *Node) dumpIndent(indent int, showPositions bool) string {
	prefix := strings.Repeat("  ", indent)

	result := prefix + n.Kind.String()
	if showPositions {
		result += " [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]"
	}
	switch n.Kind {
	case KindUnit:
		result += " " + n.Code
	case KindMultiple:
		result += " " + strconv.Itoa(n.Count)
	case KindEitherUnit:
		result += " " + n.String()
	}
	result += "\n"

	if n.Kind == KindEitherUnit {
		return result
	}
	for _, child := range n.Children {
		result += child.dumpIndent(indent+1, showPositions)
	}
	return result
}
