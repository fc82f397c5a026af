package army

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/dba/troop"
)

const (
	MinAggression = 0
	MaxAggression = 6
)

var ErrAggressionRange = errors.New("aggression out of range (0..6)")

// Variant is one army of a group: its troop definition, home terrain,
// aggression and the armies it fights or allies with.
type Variant struct {
	Ref        Ref
	Name       string
	Years      *YearRange // nil when the name carries no dates
	Troops     *troop.Expression
	Terrain    []Terrain
	Aggression int
	Enemies    []Ref
	Allies     []Ref
}

// NewVariant builds a variant around an already parsed troop definition.
// Dates in the name, after any leading reference, become Years.
// Terrain is a "/" separated list; enemies and allies use the compact
// reference list form of ParseRefList.
func NewVariant(ref Ref, name string, troops *troop.Expression, terrain string, aggression int, enemies, allies string) (*Variant, error) {
	if troops == nil {
		return nil, fmt.Errorf("variant %s: missing troop definition", ref)
	}
	v := &Variant{Ref: ref, Name: name, Troops: troops, Aggression: aggression}

	if strings.Contains(name, "BC") || strings.Contains(name, "AD") {
		years, err := ParseYearRange(refPattern.ReplaceAllString(name, ""))
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", ref, err)
		}
		v.Years = &years
	}

	terrains, err := ParseTerrainList(terrain)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", ref, err)
	}
	v.Terrain = terrains

	if err := CheckAggression(aggression); err != nil {
		return nil, fmt.Errorf("variant %s: %w", ref, err)
	}

	if v.Enemies, err = ParseRefList(enemies); err != nil {
		return nil, fmt.Errorf("variant %s enemies: %w", ref, err)
	}
	if v.Allies, err = ParseRefList(allies); err != nil {
		return nil, fmt.Errorf("variant %s allies: %w", ref, err)
	}
	return v, nil
}

// ParseVariant is NewVariant with the troop definition given as text.
func ParseVariant(ref Ref, name, troops, terrain string, aggression int, enemies, allies string) (*Variant, error) {
	expr, err := troop.Parse(troops)
	if err != nil {
		return nil, fmt.Errorf("%w, armyRef=%s", err, ref)
	}
	return NewVariant(ref, name, expr, terrain, aggression, enemies, allies)
}

// CheckAggression validates an aggression rating.
func CheckAggression(aggression int) error {
	if aggression < MinAggression || aggression > MaxAggression {
		return fmt.Errorf("%w: %d", ErrAggressionRange, aggression)
	}
	return nil
}

func (v *Variant) String() string {
	if v.Years == nil {
		return v.Ref.String() + " " + v.Name
	}
	return v.Ref.String() + " " + v.Name + " " + v.Years.String()
}

// HasTerrain reports whether t is one of the variant's home terrains.
func (v *Variant) HasTerrain(t Terrain) bool {
	for _, vt := range v.Terrain {
		if vt == t {
			return true
		}
	}
	return false
}

// ActiveIn reports whether the variant's own dates contain y. Variants
// without dates are never active on their own.
func (v *Variant) ActiveIn(y Year) bool {
	return v.Years != nil && v.Years.Contains(y)
}
