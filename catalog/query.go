package catalog

import (
	"fmt"
	"strings"

	"github.com/dhamidi/dba/army"
	"github.com/dhamidi/dba/element"
)

// Armies returns every army in reference order.
func (c *Catalog) Armies() []*army.Army {
	armies := make([]*army.Army, 0, len(c.armies))
	for _, a := range c.armies {
		armies = append(armies, a)
	}
	army.SortArmies(armies)
	return armies
}

// Army looks up an army by its group reference. A variant reference finds
// the army the variant belongs to.
func (c *Catalog) Army(ref army.Ref) (*army.Army, bool) {
	a, ok := c.armies[ref.Group()]
	return a, ok
}

// Variant looks up a single variant.
func (c *Catalog) Variant(ref army.Ref) (*army.Variant, bool) {
	a, ok := c.Army(ref)
	if !ok {
		return nil, false
	}
	return a.Variant(ref)
}

// Variants returns every variant in reference order.
func (c *Catalog) Variants() []*army.Variant {
	return c.filter(func(*army.Variant) bool { return true })
}

func (c *Catalog) filter(keep func(*army.Variant) bool) []*army.Variant {
	var out []*army.Variant
	for _, a := range c.Armies() {
		for _, v := range a.Variants {
			if keep(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// ByYear returns the armies whose header year ranges contain y.
func (c *Catalog) ByYear(y army.Year) []*army.Army {
	var out []*army.Army
	for _, a := range c.Armies() {
		if a.Header.ActiveIn(y) {
			out = append(out, a)
		}
	}
	return out
}

// ByTerrain returns the variants that list the named terrain among their
// home terrains.
func (c *Catalog) ByTerrain(name string) ([]*army.Variant, error) {
	t, err := army.ParseTerrain(name)
	if err != nil {
		return nil, err
	}
	return c.filter(func(v *army.Variant) bool { return v.HasTerrain(t) }), nil
}

// ByAggression returns the variants with the given aggression rating.
func (c *Catalog) ByAggression(aggression int) ([]*army.Variant, error) {
	if err := army.CheckAggression(aggression); err != nil {
		return nil, err
	}
	return c.filter(func(v *army.Variant) bool { return v.Aggression == aggression }), nil
}

// ByElement returns the variants whose troop definition mentions the unit
// code. A type name such as "war wagons" selects every code of that type.
func (c *Catalog) ByElement(code string) ([]*army.Variant, error) {
	code = strings.TrimSpace(code)
	codes := []string{code}
	if !element.IsCode(code) {
		t, err := element.ParseType(code)
		if err != nil {
			if s := element.Suggest(code); s != "" {
				return nil, fmt.Errorf("%w, did you mean %q?", err, s)
			}
			return nil, err
		}
		codes = t.Codes()
	}
	return c.filter(func(v *army.Variant) bool {
		for _, code := range codes {
			if v.Troops.ContainsUnit(code) {
				return true
			}
		}
		return false
	}), nil
}

// ByTroops returns the variants whose troop definition admits the given
// composition, e.g. every army that can field "Cv+Gen,2x3Kn".
func (c *Catalog) ByTroops(pattern string) ([]*army.Variant, error) {
	candidate, err := c.cache.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return c.filter(func(v *army.Variant) bool { return v.Troops.Matches(candidate) }), nil
}

// ByUnits returns the variants whose unit list contains every unit of the
// given expression, counting duplicates.
func (c *Catalog) ByUnits(units string) ([]*army.Variant, error) {
	want, err := c.cache.Parse(units)
	if err != nil {
		return nil, err
	}
	return c.filter(func(v *army.Variant) bool { return v.Troops.ContainsAllUnits(want) }), nil
}

// ByRegion returns the variants listed in the geographic index under the
// named region or any region below it.
func (c *Catalog) ByRegion(name string) ([]*army.Variant, error) {
	r, err := army.FindRegion(name)
	if err != nil {
		return nil, err
	}
	return c.filter(func(v *army.Variant) bool { return r.Covers(v.Ref) }), nil
}

// Enemies resolves the enemy references of a variant to the variants in
// the catalog. A group reference resolves to every variant of the group.
func (c *Catalog) Enemies(v *army.Variant) []*army.Variant {
	return c.resolve(v.Enemies)
}

// Allies is like Enemies for the ally references.
func (c *Catalog) Allies(v *army.Variant) []*army.Variant {
	return c.resolve(v.Allies)
}

func (c *Catalog) resolve(refs []army.Ref) []*army.Variant {
	var out []*army.Variant
	for _, ref := range refs {
		a, ok := c.Army(ref)
		if !ok {
			continue
		}
		if ref.Version == 0 {
			out = append(out, a.Variants...)
			continue
		}
		if v, ok := a.Variant(ref); ok {
			out = append(out, v)
		}
	}
	army.SortVariants(out)
	return out
}
