package troop

// unwrap strips groups and 1x multiples, which never affect matching.
func unwrap(n *Node) *Node {
	for {
		switch {
		case n.Kind == KindGroup:
			n = n.Children[0]
		case n.Kind == KindMultiple && n.Count == 1:
			n = n.Children[0]
		default:
			return n
		}
	}
}

// alternatives returns the branches of a disjunction.
func alternatives(n *Node) []*Node {
	return n.Children
}

func isPairDisjunction(n *Node) bool {
	return n.Kind == KindEither || n.Kind == KindEitherUnit
}

// Match reports whether candidate is compatible with pattern.
//
// Disjunctions on either side are resolved first: two disjunctions match
// when they share an alternative, except that two binary choices ("a/b")
// must agree on both branches in some order. A disjunction against
// anything else matches when one of its branches does. Otherwise the nodes
// must be of the same kind. Lists are compared as multisets in which "nxe"
// stands for n occurrences of e; conjunctions are compared as plain
// multisets, dismounts in role order and other multiples by count and
// content.
func Match(pattern, candidate *Node) bool {
	p, c := unwrap(pattern), unwrap(candidate)

	switch {
	case p.IsDisjunction() && c.IsDisjunction():
		if isPairDisjunction(p) && isPairDisjunction(c) {
			a, b := p.Children[0], p.Children[1]
			x, y := c.Children[0], c.Children[1]
			return (Match(a, x) && Match(b, y)) || (Match(a, y) && Match(b, x))
		}
		for _, pa := range alternatives(p) {
			for _, ca := range alternatives(c) {
				if Match(pa, ca) {
					return true
				}
			}
		}
		return false
	case p.IsDisjunction():
		for _, pa := range alternatives(p) {
			if Match(pa, c) {
				return true
			}
		}
		return false
	case c.IsDisjunction():
		for _, ca := range alternatives(c) {
			if Match(p, ca) {
				return true
			}
		}
		return false
	}

	if p.Kind != c.Kind {
		return false
	}

	switch p.Kind {
	case KindUnit:
		return p.Code == c.Code
	case KindList:
		return matchList(p.Children, c.Children)
	case KindAnd:
		return matchMultiset(p.Children, c.Children)
	case KindDismount:
		return Match(p.Children[0], c.Children[0]) && Match(p.Children[1], c.Children[1])
	case KindMultiple:
		return p.Count == c.Count && Match(p.Children[0], c.Children[0])
	}
	return false
}

// IsInstance reports whether candidate is a ground composition that
// pattern admits.
func IsInstance(pattern, candidate *Node) bool {
	return candidate.IsGround() && Match(pattern, candidate)
}

// matchMultiset reports whether there is a bijection between patterns and
// candidates pairing only matching items. It runs augmenting-path bipartite
// matching over a precomputed compatibility matrix.
func matchMultiset(patterns, candidates []*Node) bool {
	if len(patterns) != len(candidates) {
		return false
	}
	n := len(patterns)
	compatible := make([][]bool, n)
	for i, p := range patterns {
		compatible[i] = make([]bool, n)
		for j, c := range candidates {
			compatible[i][j] = Match(p, c)
		}
	}

	owner := make([]int, n)
	for j := range owner {
		owner[j] = -1
	}
	for i := 0; i < n; i++ {
		seen := make([]bool, n)
		if !augment(i, compatible, owner, seen) {
			return false
		}
	}
	return true
}

func augment(i int, compatible [][]bool, owner []int, seen []bool) bool {
	for j, ok := range compatible[i] {
		if !ok || seen[j] {
			continue
		}
		seen[j] = true
		if owner[j] < 0 || augment(owner[j], compatible, owner, seen) {
			owner[j] = i
			return true
		}
	}
	return false
}

// slot is a list item standing for weight occurrences of node.
type slot struct {
	node   *Node
	weight int
}

// listChoices returns the ways a sequence of list items can be read as
// weighted slots. Nested lists are spliced and multiples become weights. A
// disjunction stays a single slot unless one of its branches carries a
// count, in which case each branch is a separate choice. Repeated
// disjunctions are always split by branch.
func listChoices(items []*Node) [][]slot {
	choices := [][]slot{nil}
	for _, item := range items {
		var next [][]slot
		for _, prefix := range choices {
			for _, c := range itemChoices(item) {
				next = append(next, append(append([]slot(nil), prefix...), c...))
			}
		}
		choices = next
	}
	return choices
}

func itemChoices(n *Node) [][]slot {
	u := unwrap(n)
	switch {
	case u.Kind == KindList:
		return listChoices(u.Children)
	case u.Kind == KindMultiple:
		// Every occurrence of a repeated disjunction takes the same branch.
		inner := []*Node{u.Children[0]}
		if d := unwrap(u.Children[0]); d.IsDisjunction() {
			inner = alternatives(d)
		}
		var out [][]slot
		for _, c := range choicesOf(inner) {
			scaled := make([]slot, len(c))
			for i, s := range c {
				scaled[i] = slot{node: s.node, weight: s.weight * u.Count}
			}
			out = append(out, scaled)
		}
		return out
	case u.IsDisjunction():
		var out [][]slot
		single := true
		for _, branch := range alternatives(u) {
			bc := itemChoices(branch)
			for _, c := range bc {
				if len(c) != 1 || c[0].weight != 1 {
					single = false
				}
			}
			out = append(out, bc...)
		}
		if single {
			return [][]slot{{{node: u, weight: 1}}}
		}
		return out
	}
	return [][]slot{{{node: u, weight: 1}}}
}

func choicesOf(nodes []*Node) [][]slot {
	var out [][]slot
	for _, n := range nodes {
		out = append(out, itemChoices(n)...)
	}
	return out
}

// matchList reports whether some reading of the pattern items pairs off
// with some reading of the candidate items.
func matchList(patterns, candidates []*Node) bool {
	cs := listChoices(candidates)
	for _, ps := range listChoices(patterns) {
		for _, c := range cs {
			if matchSlots(ps, c) {
				return true
			}
		}
	}
	return false
}

// matchSlots reports whether the weights of patterns can be distributed
// over compatible candidates so that every occurrence on both sides is
// used exactly once. It is a maximum flow from pattern slots to candidate
// slots, found with breadth-first augmenting paths.
func matchSlots(patterns, candidates []slot) bool {
	total := 0
	for _, s := range patterns {
		total += s.weight
	}
	for _, s := range candidates {
		total -= s.weight
	}
	if total != 0 {
		return false
	}

	np, nc := len(patterns), len(candidates)
	source, sink := np+nc, np+nc+1
	size := np + nc + 2
	capacity := make([][]int, size)
	for i := range capacity {
		capacity[i] = make([]int, size)
	}
	want := 0
	for i, p := range patterns {
		capacity[source][i] = p.weight
		want += p.weight
		for j, c := range candidates {
			if Match(p.node, c.node) {
				capacity[i][np+j] = p.weight
			}
		}
	}
	for j, c := range candidates {
		capacity[np+j][sink] = c.weight
	}

	flow := 0
	parent := make([]int, size)
	for {
		for i := range parent {
			parent[i] = -1
		}
		parent[source] = source
		queue := []int{source}
		for len(queue) > 0 && parent[sink] < 0 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < size; v++ {
				if parent[v] < 0 && capacity[u][v] > 0 {
					parent[v] = u
					queue = append(queue, v)
				}
			}
		}
		if parent[sink] < 0 {
			return flow == want
		}
		push := want
		for v := sink; v != source; v = parent[v] {
			push = min(push, capacity[parent[v]][v])
		}
		for v := sink; v != source; v = parent[v] {
			capacity[parent[v]][v] -= push
			capacity[v][parent[v]] += push
		}
		flow += push
	}
}
