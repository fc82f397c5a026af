// Package troop implements the troop-composition language of DBA army
// lists: a lexer and recursive-descent parser for expressions such as
// "Cv//4Wb,7x4Wb,3x3Bw or 7Hd,1xPs", a matcher deciding whether one
// composition is admitted by another, and a generator enumerating the
// ground compositions an expression admits.
//
// Operators from loosest to tightest: "," (list), "or", "+" (and),
// "/" (either, binary), "//" (dismount, binary), "Nx" (multiple). The
// shorthand "3/4Wb" stands for "3Wb/4Wb". Parentheses group.
package troop

import (
	"strings"
)

// Expression is a parsed troop definition. It is immutable and safe for
// concurrent use.
type Expression struct {
	source string
	root   *Node
}

// Parse parses text into an Expression. Empty and blank input are
// rejected with an *EmptyInputError before lexing.
func Parse(text string, opts ...Option) (*Expression, error) {
	if text == "" {
		return nil, &EmptyInputError{Reason: "empty"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Reason: "blank"}
	}
	root, err := NewParser(text, opts...).Parse()
	if err != nil {
		return nil, err
	}
	return &Expression{source: text, root: root}, nil
}

// ParsePtr is Parse for optional input; a nil text is reported as "null".
func ParsePtr(text *string, opts ...Option) (*Expression, error) {
	if text == nil {
		return nil, &EmptyInputError{Reason: "null"}
	}
	return Parse(*text, opts...)
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(text string) *Expression {
	e, err := Parse(text)
	if err != nil {
		panic("troop: MustParse(" + text + "): " + err.Error())
	}
	return e
}

// String returns the canonical form: the source with whitespace removed,
// groups and operand order kept.
func (e *Expression) String() string {
	return e.root.String()
}

// Source returns the text the expression was parsed from.
func (e *Expression) Source() string {
	return e.source
}

func (e *Expression) Root() *Node {
	return e.root
}

func (e *Expression) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Matches reports whether other is a composition e admits.
func (e *Expression) Matches(other *Expression) bool {
	return other != nil && Match(e.root, other.root)
}

func (e *Expression) MatchesString(s string) (bool, error) {
	other, err := Parse(s)
	if err != nil {
		return false, err
	}
	return e.Matches(other), nil
}

// IsInstance reports whether other is ground and admitted by e.
func (e *Expression) IsInstance(other *Expression) bool {
	return other != nil && IsInstance(e.root, other.root)
}

func (e *Expression) IsInstanceString(s string) (bool, error) {
	other, err := Parse(s)
	if err != nil {
		return false, err
	}
	return e.IsInstance(other), nil
}

func (e *Expression) Permute() []string {
	return Permute(e.root)
}

func (e *Expression) PermuteLimit(limit int) ([]string, error) {
	return PermuteLimit(e.root, limit)
}

func (e *Expression) PermutationCount() int {
	return PermutationCount(e.root)
}

// UnitList returns the unit codes of e in tree order with duplicates. A
// multiple contributes its content once; "3/4Wb" contributes 3Wb and 4Wb.
func (e *Expression) UnitList() []string {
	var units []string
	Walk(e.root, func(n *Node) bool {
		if n.Kind == KindUnit {
			units = append(units, n.Code)
		}
		return true
	})
	return units
}

// ContainsUnit reports whether code occurs anywhere in e.
func (e *Expression) ContainsUnit(code string) bool {
	found := false
	Walk(e.root, func(n *Node) bool {
		if n.Kind == KindUnit && n.Code == code {
			found = true
		}
		return !found
	})
	return found
}

// ContainsAllUnits reports whether the unit list of other is contained in
// the unit list of e, counting duplicates.
func (e *Expression) ContainsAllUnits(other *Expression) bool {
	if other == nil {
		return false
	}
	counts := make(map[string]int)
	for _, code := range e.UnitList() {
		counts[code]++
	}
	for _, code := range other.UnitList() {
		if counts[code] == 0 {
			return false
		}
		counts[code]--
	}
	return true
}

func (e *Expression) ContainsAllUnitsString(s string) (bool, error) {
	other, err := Parse(s)
	if err != nil {
		return false, err
	}
	return e.ContainsAllUnits(other), nil
}

// Equal compares canonical forms, so "Cv // 4Wb" equals "Cv//4Wb" while
// "Bd+Cv" and "Cv+Bd" differ although each matches the other.
func (e *Expression) Equal(other *Expression) bool {
	return other != nil && e.String() == other.String()
}

// Compare orders expressions by canonical form. A nil other sorts after e.
func (e *Expression) Compare(other *Expression) int {
	if other == nil {
		return -1
	}
	return strings.Compare(e.String(), other.String())
}

// Key returns a value suitable as a map key; equal expressions share a key.
func (e *Expression) Key() string {
	return e.String()
}
