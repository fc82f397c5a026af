// Package army models the DBA 3.0 army lists: references such as "II/8a",
// historical years and year ranges, home terrain, group headers and the
// variants that carry a troop definition.
package army

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinSection = 1
	MaxSection = 4
)

var romanSections = []string{"N", "I", "II", "III", "IV"}

const versionLetters = "abcdefghijklmnopqrstuvwxyz"

// Ref identifies an army group (Version 0) or one of its variants
// (Version 1 for "a", 2 for "b", ...).
type Ref struct {
	Section int
	Number  int
	Version int
}

// MaxNumber returns the number of army groups in a section, or 0 for an
// unknown section.
func MaxNumber(section int) int {
	switch section {
	case 1:
		return 64
	case 2:
		return 84
	case 3:
		return 80
	case 4:
		return 85
	}
	return 0
}

// NewRef validates the parts of a reference.
func NewRef(section, number, version int) (Ref, error) {
	if section < MinSection || section > MaxSection {
		return Ref{}, fmt.Errorf("section (1..4)=%d", section)
	}
	if number < 1 || number > MaxNumber(section) {
		return Ref{}, fmt.Errorf("number (1..%d)=%d", MaxNumber(section), number)
	}
	if version < 0 || version > len(versionLetters) {
		return Ref{}, fmt.Errorf("version (0..%d)=%d", len(versionLetters), version)
	}
	return Ref{Section: section, Number: number, Version: version}, nil
}

// SectionRoman returns the section as a roman numeral.
func SectionRoman(section int) string {
	if section < MinSection || section > MaxSection {
		return romanSections[0]
	}
	return romanSections[section]
}

// ParseSection parses "I" through "IV".
func ParseSection(s string) (int, error) {
	for i := MinSection; i <= MaxSection; i++ {
		if romanSections[i] == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("section=%q", s)
}

// VersionLetter returns "a" for 1, "b" for 2 and "" for a group reference.
func VersionLetter(version int) string {
	if version < 1 || version > len(versionLetters) {
		return ""
	}
	return versionLetters[version-1 : version]
}

// VersionNumber converts the first letter of s (either case) into its
// one-based version. Blank or non-letter input gives 0.
func VersionNumber(s string) int {
	if s == "" {
		return 0
	}
	return strings.IndexByte(versionLetters, strings.ToLower(s)[0]) + 1
}

func (r Ref) IsZero() bool {
	return r == Ref{}
}

// Group returns the group reference of a variant, e.g. II/8 for II/8a.
func (r Ref) Group() Ref {
	r.Version = 0
	return r
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%d%s", SectionRoman(r.Section), r.Number, VersionLetter(r.Version))
}

func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Ref) UnmarshalText(text []byte) error {
	parsed, err := ParseRef(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Compare orders by section, then number, then version.
func (r Ref) Compare(other Ref) int {
	switch {
	case r.Section != other.Section:
		return cmpInt(r.Section, other.Section)
	case r.Number != other.Number:
		return cmpInt(r.Number, other.Number)
	}
	return cmpInt(r.Version, other.Version)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var refPattern = regexp.MustCompile(`^\s*([IV]+)/(\d+)([a-z]?)`)

// ParseRef reads a reference from the start of s. Anything after the
// reference is ignored, so "II/8a Bruttian or Lucanian Armies" gives II/8a.
func ParseRef(s string) (Ref, error) {
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return Ref{}, fmt.Errorf("parse of army reference %q", s)
	}
	section, err := ParseSection(m[1])
	if err != nil {
		return Ref{}, fmt.Errorf("parse of army reference %q: %w", s, err)
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return Ref{}, fmt.Errorf("parse of army reference %q: %w", s, err)
	}
	ref, err := NewRef(section, number, VersionNumber(m[3]))
	if err != nil {
		return Ref{}, fmt.Errorf("parse of army reference %q: %w", s, err)
	}
	return ref, nil
}

// MustParseRef is like ParseRef but panics on error.
func MustParseRef(s string) Ref {
	r, err := ParseRef(s)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	listNoise   = regexp.MustCompile(`[()]|and/or|\band\b|\bor\b`)
	listPattern = regexp.MustCompile(`([IV]*/?\d+[a-z]?)`)
)

// ParseRefList parses the enemy and ally lists of the army books, where
// the section may be omitted when it repeats: "I/47,II/18e,31c,31f".
// Parentheses and the words "and", "or" are dropped. Empty input gives an
// empty list.
func ParseRefList(s string) ([]Ref, error) {
	s = listNoise.ReplaceAllString(s, " ")
	var refs []Ref
	lastSection := ""
	for _, item := range listPattern.FindAllString(s, -1) {
		if !strings.HasPrefix(item, "I") {
			if lastSection == "" {
				return nil, fmt.Errorf("army reference %q has no section", item)
			}
			item = lastSection + "/" + strings.TrimPrefix(item, "/")
		}
		ref, err := ParseRef(item)
		if err != nil {
			return nil, err
		}
		lastSection = SectionRoman(ref.Section)
		refs = append(refs, ref)
	}
	return refs, nil
}

// CompactString is the inverse of ParseRefList: the section is written
// only when it changes.
func CompactString(refs []Ref) string {
	var b strings.Builder
	prev := 0
	for i, r := range refs {
		if i > 0 {
			b.WriteByte(',')
		}
		if r.Section == prev {
			b.WriteString(strconv.Itoa(r.Number))
			b.WriteString(VersionLetter(r.Version))
			continue
		}
		b.WriteString(r.String())
		prev = r.Section
	}
	return b.String()
}
