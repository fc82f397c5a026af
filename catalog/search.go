package catalog

import (
	"github.com/dhamidi/dba/army"
)

// Query combines the catalog filters. Zero fields do not filter; a
// variant must pass every filter that is set.
type Query struct {
	Year       *army.Year
	Terrain    string
	Aggression *int
	Element    string
	Troops     string
	Units      string
	Region     string
}

func (q Query) IsZero() bool {
	return q.Year == nil && q.Terrain == "" && q.Aggression == nil &&
		q.Element == "" && q.Troops == "" && q.Units == "" && q.Region == ""
}

// Search returns the variants matching every filter of q in reference
// order. An empty query returns every variant.
func (c *Catalog) Search(q Query) ([]*army.Variant, error) {
	var sets [][]*army.Variant

	if q.Year != nil {
		var variants []*army.Variant
		for _, a := range c.ByYear(*q.Year) {
			variants = append(variants, a.Variants...)
		}
		sets = append(sets, variants)
	}

	filters := []struct {
		set   bool
		query func() ([]*army.Variant, error)
	}{
		{q.Terrain != "", func() ([]*army.Variant, error) { return c.ByTerrain(q.Terrain) }},
		{q.Aggression != nil, func() ([]*army.Variant, error) { return c.ByAggression(*q.Aggression) }},
		{q.Element != "", func() ([]*army.Variant, error) { return c.ByElement(q.Element) }},
		{q.Troops != "", func() ([]*army.Variant, error) { return c.ByTroops(q.Troops) }},
		{q.Units != "", func() ([]*army.Variant, error) { return c.ByUnits(q.Units) }},
		{q.Region != "", func() ([]*army.Variant, error) { return c.ByRegion(q.Region) }},
	}
	for _, f := range filters {
		if !f.set {
			continue
		}
		variants, err := f.query()
		if err != nil {
			return nil, err
		}
		sets = append(sets, variants)
	}

	if len(sets) == 0 {
		return c.Variants(), nil
	}
	return intersect(sets), nil
}

// intersect keeps the variants of the first set present in all others.
// Every set is in reference order, so the result is too.
func intersect(sets [][]*army.Variant) []*army.Variant {
	counts := make(map[*army.Variant]int)
	for _, set := range sets[1:] {
		for _, v := range set {
			counts[v]++
		}
	}
	var out []*army.Variant
	for _, v := range sets[0] {
		if counts[v] == len(sets)-1 {
			out = append(out, v)
		}
	}
	return out
}
