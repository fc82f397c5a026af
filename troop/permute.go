package troop

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Binding levels of the surface syntax, loosest first. A ground string is
// wrapped in parentheses when it is placed under an operator that binds at
// least as tightly as its own top-level operator.
const (
	levelList = iota + 1
	levelOr
	levelAnd
	levelEither
	levelDismount
	levelMultiple
	levelAtom
)

var levels = map[NodeKind]int{
	KindList:     levelList,
	KindOr:       levelOr,
	KindAnd:      levelAnd,
	KindEither:   levelEither,
	KindDismount: levelDismount,
	KindMultiple: levelMultiple,
}

// ground is one concrete composition together with the binding level of
// its outermost operator.
type ground struct {
	text  string
	level int
}

func (g ground) under(parent int) string {
	if g.level <= parent {
		return "(" + g.text + ")"
	}
	return g.text
}

// Permute enumerates every ground composition n admits. Each result parses
// back into a tree that n matches.
func Permute(n *Node) []string {
	grounds := permute(n)
	out := make([]string, len(grounds))
	for i, g := range grounds {
		out[i] = g.text
	}
	return out
}

// PermuteLimit is Permute with a bound on the number of results. A limit
// of zero or less means no bound.
func PermuteLimit(n *Node, limit int) ([]string, error) {
	if limit > 0 {
		if count := PermutationCount(n); count > limit {
			return nil, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyPermutations, count, limit)
		}
	}
	return Permute(n), nil
}

// PermutationCount returns len(Permute(n)) without building the results.
// The count saturates at math.MaxInt.
func PermutationCount(n *Node) int {
	switch n.Kind {
	case KindUnit:
		return 1
	case KindGroup, KindMultiple:
		return PermutationCount(n.Children[0])
	case KindOr, KindEither, KindEitherUnit:
		total := 0
		for _, child := range n.Children {
			total = saturatingAdd(total, PermutationCount(child))
		}
		return total
	default:
		total := 1
		for _, child := range n.Children {
			total = saturatingMul(total, PermutationCount(child))
		}
		return total
	}
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

func permute(n *Node) []ground {
	switch n.Kind {
	case KindUnit:
		return []ground{{text: n.Code, level: levelAtom}}
	case KindGroup:
		return permute(n.Children[0])
	case KindMultiple:
		prefix := strconv.Itoa(n.Count) + "x"
		inner := permute(n.Children[0])
		out := make([]ground, len(inner))
		for i, g := range inner {
			out[i] = ground{text: prefix + g.under(levelMultiple-1), level: levelMultiple}
		}
		return out
	case KindOr, KindEither, KindEitherUnit:
		var out []ground
		for _, child := range n.Children {
			out = append(out, permute(child)...)
		}
		return out
	default:
		level := levels[n.Kind]
		sep := separators[n.Kind]
		slots := make([][]ground, len(n.Children))
		for i, child := range n.Children {
			slots[i] = permute(child)
		}
		var out []ground
		odometer(slotSizes(slots), func(idx []int) {
			parts := make([]string, len(idx))
			for i, k := range idx {
				parts[i] = slots[i][k].under(level)
			}
			out = append(out, ground{text: strings.Join(parts, sep), level: level})
		})
		return out
	}
}

func slotSizes(slots [][]ground) []int {
	sizes := make([]int, len(slots))
	for i, s := range slots {
		sizes[i] = len(s)
	}
	return sizes
}

// CountOff returns every combination that takes one entry from each list,
// joined with delim. The rightmost list varies fastest, so
// CountOff([[6] [4 5] [1 2 3]], ",") starts "6,4,1", "6,4,2", "6,4,3", "6,5,1".
func CountOff(lists [][]string, delim string) []string {
	sizes := make([]int, len(lists))
	for i, l := range lists {
		sizes[i] = len(l)
	}
	var out []string
	odometer(sizes, func(idx []int) {
		parts := make([]string, len(idx))
		for i, k := range idx {
			parts[i] = lists[i][k]
		}
		out = append(out, strings.Join(parts, delim))
	})
	return out
}

// odometer calls fn with every index tuple below sizes, last position
// fastest. Nothing is visited if sizes is empty or any size is zero.
func odometer(sizes []int, fn func(idx []int)) {
	if len(sizes) == 0 {
		return
	}
	for _, s := range sizes {
		if s == 0 {
			return
		}
	}
	idx := make([]int, len(sizes))
	for {
		fn(idx)
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < sizes[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}
