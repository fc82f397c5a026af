// Package element describes the DBA 3.0 element taxonomy: the troop types
// and the unit codes that name their flavours (solid, fast, double based).
package element

import (
	"fmt"
	"sort"
	"strings"
)

type Type int

const (
	Elephants Type = iota
	Knights
	Cavalry
	LightHorse
	ScythedChariots
	Camelry
	MountedInfantry
	Spears
	Pikes
	Blades
	Auxilia
	Bows
	Psiloi
	Warband
	Hordes
	Artillery
	WarWagons
	General
)

var typeNames = map[Type]string{
	Elephants:       "ELEPHANTS",
	Knights:         "KNIGHTS",
	Cavalry:         "CAVALRY",
	LightHorse:      "LIGHT_HORSE",
	ScythedChariots: "SCYTHED_CHARIOTS",
	Camelry:         "CAMELRY",
	MountedInfantry: "MOUNTED_INFANTRY",
	Spears:          "SPEARS",
	Pikes:           "PIKES",
	Blades:          "BLADES",
	Auxilia:         "AUXILIA",
	Bows:            "BOWS",
	Psiloi:          "PSILOI",
	Warband:         "WARBAND",
	Hordes:          "HORDES",
	Artillery:       "ARTILLERY",
	WarWagons:       "WAR_WAGONS",
	General:         "GENERAL",
}

// typeCodes lists the codes of each type in the order of the army list
// legend. Mounted infantry is written as a mount prefix on a bow code.
var typeCodes = map[Type][]string{
	Elephants:       {"El"},
	Knights:         {"3Kn", "4Kn", "6Kn", "Kn", "HCh"},
	Cavalry:         {"Cv", "6Cv", "LCh"},
	LightHorse:      {"LH", "LCm"},
	ScythedChariots: {"SCh"},
	Camelry:         {"Cm"},
	MountedInfantry: {"Mtd-3Bw", "Mtd-4Bw", "Mtd-8Bw", "Mtd-3Cb", "Mtd-4Cb", "Mtd-8Cb", "Mtd-3Lb", "Mtd-4Lb", "Mtd-8Lb"},
	Spears:          {"Sp", "8Sp"},
	Pikes:           {"4Pk", "3Pk", "Pk"},
	Blades:          {"4Bd", "3Bd", "6Bd", "Bd"},
	Auxilia:         {"4Ax", "3Ax", "Ax"},
	Bows:            {"4Bw", "3Bw", "8Bw", "4Cb", "3Cb", "8Cb", "4Lb", "3Lb", "8Lb", "Bw", "Cb", "Lb"},
	Psiloi:          {"Ps"},
	Warband:         {"4Wb", "3Wb", "Wb"},
	Hordes:          {"7Hd", "5Hd", "Hd"},
	Artillery:       {"Art"},
	WarWagons:       {"WWg"},
	General:         {"CP", "Lit", "CWg", "Gen"},
}

var codeTypes = func() map[string]Type {
	m := make(map[string]Type)
	for t, codes := range typeCodes {
		for _, code := range codes {
			m[code] = t
		}
	}
	return m
}()

// Types returns every element type in legend order.
func Types() []Type {
	types := make([]Type, 0, len(typeNames))
	for t := Elephants; t <= General; t++ {
		types = append(types, t)
	}
	return types
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ProperCase returns the display name, e.g. "Light Horse" for LIGHT_HORSE.
func (t Type) ProperCase() string {
	words := strings.Split(t.String(), "_")
	for i, w := range words {
		words[i] = w[:1] + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// Codes returns the unit codes belonging to t. The slice must not be modified.
func (t Type) Codes() []string {
	return typeCodes[t]
}

// ParseType accepts either the type name ("LIGHT_HORSE", "light horse") or
// one of its codes ("LH").
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	if t, ok := TypeOf(strings.TrimSpace(s)); ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, s)
}

// TypeOf returns the type a unit code belongs to.
func TypeOf(code string) (Type, bool) {
	t, ok := codeTypes[code]
	return t, ok
}

// IsCode reports whether code is part of the vocabulary.
func IsCode(code string) bool {
	_, ok := codeTypes[code]
	return ok
}

// AllCodes returns every unit code, grouped by type in legend order.
func AllCodes() []string {
	var codes []string
	for _, t := range Types() {
		codes = append(codes, typeCodes[t]...)
	}
	return codes
}

// Vocabulary returns every unit code ordered longest first, which is the
// order a longest-prefix scanner wants to try them in.
func Vocabulary() []string {
	codes := AllCodes()
	sort.SliceStable(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}
