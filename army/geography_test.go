package army

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestWorldNames(t *testing.T) {
	if World.Name != "World" || World.Parent != nil {
		t.Fatalf("World = %q with parent %v", World.Name, World.Parent)
	}
	want := []string{"Africa", "America", "Asia", "Europe", "India", "Orient"}
	if got := World.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}

	all := World.AllNames()
	if len(all) != 28 {
		t.Fatalf("AllNames() has %d names, want 28", len(all))
	}
	if all[0] != "World" || all[1] != "Africa" || all[len(all)-1] != "Tibet" {
		t.Errorf("AllNames() = %q", all)
	}

	for _, r := range World.Regions {
		if r.Parent != World {
			t.Errorf("%s: parent = %v, want World", r.Name, r.Parent)
		}
	}
}

func TestFindRegion(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		parent string
	}{
		{"Arabia", "Arabia", "Asia"},
		{"  arabia ", "Arabia", "Asia"},
		{"Italy & the Alps", "Italy & the Alps", "Europe"},
		{"Africa", "Africa", "World"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := FindRegion(tt.name)
			if err != nil {
				t.Fatalf("FindRegion error: %v", err)
			}
			if r.Name != tt.want || r.Parent.Name != tt.parent {
				t.Errorf("FindRegion(%q) = %s in %s, want %s in %s", tt.name, r, r.Parent, tt.want, tt.parent)
			}
		})
	}

	if _, err := FindRegion("Atlantis"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("FindRegion(Atlantis) error = %v, want ErrUnknownRegion", err)
	}
}

func sortedRefs(refs []Ref) []Ref {
	out := append([]Ref(nil), refs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}

func TestRegionArmies(t *testing.T) {
	tests := []struct {
		region       string
		count        int
		first, last  string
		sortedFirst  string
		sortedSecond string
		sortedLast   string
	}{
		{"Africa", 28, "I/2", "III/75", "I/2", "I/3", "IV/45"},
		{"World", 340, "I/2", "III/15", "I/1", "I/2", "IV/84"},
		{"Tibet", 1, "III/15", "III/15", "III/15", "", "III/15"},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			r, err := FindRegion(tt.region)
			if err != nil {
				t.Fatal(err)
			}
			refs := r.AllArmies()
			if len(refs) != tt.count {
				t.Fatalf("AllArmies() has %d refs, want %d", len(refs), tt.count)
			}
			if refs[0].String() != tt.first || refs[len(refs)-1].String() != tt.last {
				t.Errorf("AllArmies() runs %s..%s, want %s..%s", refs[0], refs[len(refs)-1], tt.first, tt.last)
			}
			sorted := sortedRefs(refs)
			if sorted[0].String() != tt.sortedFirst || sorted[len(sorted)-1].String() != tt.sortedLast {
				t.Errorf("sorted refs run %s..%s, want %s..%s", sorted[0], sorted[len(sorted)-1], tt.sortedFirst, tt.sortedLast)
			}
			if tt.sortedSecond != "" && sorted[1].String() != tt.sortedSecond {
				t.Errorf("second sorted ref = %s, want %s", sorted[1], tt.sortedSecond)
			}
		})
	}
}

func TestRegionCovers(t *testing.T) {
	africa, err := FindRegion("Africa")
	if err != nil {
		t.Fatal(err)
	}
	arabia, err := FindRegion("Arabia")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		region *Region
		ref    string
		want   bool
	}{
		{africa, "I/3", true},
		{africa, "I/3b", true},
		{africa, "I/4", false},
		{arabia, "III/25a", true},
		{arabia, "III/25b", false},
		{arabia, "III/25", false},
		{World, "IV/84", true},
	}
	for _, tt := range tests {
		t.Run(tt.region.Name+" "+tt.ref, func(t *testing.T) {
			if got := tt.region.Covers(MustParseRef(tt.ref)); got != tt.want {
				t.Errorf("Covers(%s) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
