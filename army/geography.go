package army

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRegion = errors.New("unknown region")

// Region is a node of the geographic index of the army books. Groups such
// as Africa hold sub-regions; leaf regions hold army references.
type Region struct {
	Name    string
	Parent  *Region
	Regions []*Region
	Armies  []Ref
}

// World is the root of the geographic index.
var World = group("World",
	group("Africa",
		region("Egypt", "I/2,17,22,38,46,53,58,II/20,III/49,49,66,IV/20,45"),
		region("Other Africa", "I/3,7,56,61,II/32,40,55,57,62,84,III/12,33,69,70,75"),
	),
	region("America", "III/22,41,59,IV/9,10,11,12,19,29,53,63,70,71,72,81,84"),
	group("Asia",
		region("Arabia", "I/6,8,II/23,III/25a,25c,31,37,50,54a,54b,IV/46"),
		region("Black Sea", "I/16,24,31,39,40,43,50,II/6,25,48,65,67a,67b,III/14,27,47,51,71,80,IV/47,49"),
		region("Byzantium", "III/4,17,26,29,76,65,IV/1,2,31,32,33,34,50,51,55"),
		region("Mesopotamia, Syria & Near East",
			"I/1,4,9,11,12,15,19,20,21,25,27,29,34,35,37,44,45,51,62,"+
				"II/14,16,22,30,43,44,50,51,59,74,III/58,61,74,IV/6,7,17,26,56"),
		region("Persia", "I/5,41,42,60,II/7,19,37,69,III/8a,8b,43,IV/24,42,67,77"),
		region("Steppes", "I/43,II/24,26,58,80,III/11,13,14,16,42,44,47,IV/15,35,47,52,75"),
	),
	group("Europe",
		region("British Isles", "II/53,54,60,68,73,81,III/19,24,45,46,72,78,IV/3,16,21,23,58,62,83"),
		region("France & Low Countries", "I/14,II/11,70,72,III/5,18,28,52,53,IV/4,39,57,64,74,76,82,84"),
		region("Germany & Eastern Europe", "II/47,III/1,2,30,32,48,63,68,79,IV/13,30,43,44,65,66,80"),
		region("Greece & Balkans, Syria & Near East",
			"I/18,26,28,60,47,48,52,54,63,II/5,12,15,17,18,31,34,35,52,IV/22,25,56,60,69"),
		region("Italy & the Alps",
			"I/14,33,36,55a,55b,57,59,II/8b,8c,9,40,13,27,33,45,49,56,64,78,82,III/3,21,33,73,77,IV/5,61,41,79"),
		region("Scandinavia & Baltic", "II/73,III/40,IV/38,60,68a,68e,74"),
		region("Spain & Portugal", "II/39,66,83,III/34,35,IV/38,60a,68e,74"),
	),
	region("India", "III/22,41,59,IV/9,10,11,12,19,29,53,63,70,71,72,81,84"),
	group("Orient",
		region("China", "I/13,32a,32b,43,II/4a,4b,4c,4d,4e,21,29,41,61,63a,63b,79,III/20,39,56,62,IV/14,48,73"),
		region("Chinese Borderlands", "I/14,II/38,III/36,67"),
		region("Korea", "II/75,76,77,III/57,IV/78"),
		region("Japan", "I/64,III/6,7,55,IV/59"),
		region("Southeast Asia", "I/49,III/9,23,60,IV/37,40"),
		region("Tibet", "III/15"),
	),
)

func group(name string, regions ...*Region) *Region {
	g := &Region{Name: name, Regions: regions}
	for _, r := range regions {
		r.Parent = g
	}
	return g
}

func region(name, armies string) *Region {
	refs, err := ParseRefList(armies)
	if err != nil {
		panic(fmt.Sprintf("region %s: %s", name, err))
	}
	return &Region{Name: name, Armies: refs}
}

// Walk visits r and its sub-regions depth first until fn returns false.
func (r *Region) Walk(fn func(*Region) bool) bool {
	if !fn(r) {
		return false
	}
	for _, sub := range r.Regions {
		if !sub.Walk(fn) {
			return false
		}
	}
	return true
}

// Names returns the names of the immediate sub-regions.
func (r *Region) Names() []string {
	names := make([]string, len(r.Regions))
	for i, sub := range r.Regions {
		names[i] = sub.Name
	}
	return names
}

// AllNames returns the names of r and every region below it, depth first.
func (r *Region) AllNames() []string {
	var names []string
	r.Walk(func(g *Region) bool {
		names = append(names, g.Name)
		return true
	})
	return names
}

// AllArmies returns the references of r and every region below it in
// index order. A reference listed by two regions appears twice.
func (r *Region) AllArmies() []Ref {
	var refs []Ref
	r.Walk(func(g *Region) bool {
		refs = append(refs, g.Armies...)
		return true
	})
	return refs
}

// Covers reports whether ref belongs to r or a region below it. A group
// reference in the index covers every variant of the group.
func (r *Region) Covers(ref Ref) bool {
	for _, a := range r.AllArmies() {
		if a == ref || (a.Version == 0 && a == ref.Group()) {
			return true
		}
	}
	return false
}

func (r *Region) String() string {
	return r.Name
}

// FindRegion looks a region up by name, ignoring case.
func FindRegion(name string) (*Region, error) {
	name = strings.TrimSpace(name)
	var found *Region
	World.Walk(func(g *Region) bool {
		if strings.EqualFold(g.Name, name) {
			found = g
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownRegion, name)
	}
	return found, nil
}
