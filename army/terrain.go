package army

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTerrain = errors.New("invalid terrain")

// Terrain is the home topography of an army.
type Terrain int

const (
	Arable Terrain = iota
	Forest
	Hilly
	Steppe
	Dry
	Tropical
	Littoral
)

var terrainNames = map[Terrain]string{
	Arable:   "ARABLE",
	Forest:   "FOREST",
	Hilly:    "HILLY",
	Steppe:   "STEPPE",
	Dry:      "DRY",
	Tropical: "TROPICAL",
	Littoral: "LITTORAL",
}

// Terrains returns every terrain in declaration order.
func Terrains() []Terrain {
	return []Terrain{Arable, Forest, Hilly, Steppe, Dry, Tropical, Littoral}
}

func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// InitCap returns "Arable" for ARABLE.
func (t Terrain) InitCap() string {
	name := t.String()
	return name[:1] + strings.ToLower(name[1:])
}

// Abbr returns the two letter abbreviation, "Ar" for ARABLE.
func (t Terrain) Abbr() string {
	name := t.String()
	return name[:1] + strings.ToLower(name[1:2])
}

func (t Terrain) MarshalText() ([]byte, error) {
	return []byte(t.InitCap()), nil
}

// ParseTerrain accepts a terrain name in any case.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, n := range terrainNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// ParseTerrainList parses a "/" separated list such as
// "Arable/Littoral/Forest".
func ParseTerrainList(s string) ([]Terrain, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty terrain", ErrUnknownTerrain)
	}
	var terrains []Terrain
	for _, part := range strings.Split(s, "/") {
		t, err := ParseTerrain(part)
		if err != nil {
			return nil, err
		}
		terrains = append(terrains, t)
	}
	return terrains, nil
}

// JoinTerrains is the inverse of ParseTerrainList.
func JoinTerrains(terrains []Terrain) string {
	names := make([]string, len(terrains))
	for i, t := range terrains {
		names[i] = t.InitCap()
	}
	return strings.Join(names, "/")
}
