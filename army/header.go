package army

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Header introduces an army group in the lists, for example
//
//	II/73 OLD SAXON, FRISIAN, BAVARIAN, THURINGIAN & EARLY-ANGLO-SAXON 250AD - 804AD
//
// The names and year ranges are derived from the group name.
type Header struct {
	Ref          Ref
	GroupName    string
	Names        []string
	Years        []YearRange
	VariantCount int
}

func NewHeader(ref Ref, groupName string, variantCount int) (*Header, error) {
	if ref.Version != 0 {
		return nil, fmt.Errorf("header %s: reference should not have a version", ref)
	}
	if variantCount < 1 {
		return nil, fmt.Errorf("header %s: variant count should be 1 or greater, got %d", ref, variantCount)
	}
	years, err := GroupYears(groupName)
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", ref, err)
	}
	return &Header{
		Ref:          ref,
		GroupName:    groupName,
		Names:        GroupNames(groupName),
		Years:        years,
		VariantCount: variantCount,
	}, nil
}

func (h *Header) String() string {
	return h.Ref.String() + " " + h.GroupName
}

// ActiveIn reports whether any of the header's year ranges contains y.
func (h *Header) ActiveIn(y Year) bool {
	for _, r := range h.Years {
		if r.Contains(y) {
			return true
		}
	}
	return false
}

var (
	groupSeparators = regexp.MustCompile(`[,&]`)
	nameStart       = regexp.MustCompile(`^[A-Z -]`)
	firstNumber     = regexp.MustCompile(`\d+`)
)

// dateStart returns where the dates of a heading fragment begin, or -1.
func dateStart(fragment string) int {
	if i := strings.Index(fragment, "CIRCA"); i > 0 {
		return i
	}
	if loc := firstNumber.FindStringIndex(fragment); loc != nil {
		return loc[0]
	}
	return -1
}

// GroupNames splits a group name on "," and "&" and returns the display
// cased names without their dates.
func GroupNames(groupName string) []string {
	var names []string
	for _, part := range groupSeparators.Split(groupName, -1) {
		part = strings.TrimSpace(part)
		if !nameStart.MatchString(part) {
			continue
		}
		if i := dateStart(part); i > 0 {
			part = strings.TrimSpace(part[:i])
		}
		names = append(names, DisplayCase(part))
	}
	return names
}

// GroupYears returns the year ranges found in a group name, one for each
// "," or "&" separated fragment that carries dates.
func GroupYears(groupName string) ([]YearRange, error) {
	var ranges []YearRange
	var errs []error
	for _, part := range groupSeparators.Split(groupName, -1) {
		i := dateStart(part)
		if i < 0 {
			continue
		}
		r, err := ParseYearRange(part[i:])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, errors.Join(errs...)
}

const capitalizeAfter = " '-/\"("

// DisplayCase upper cases the first letter of each word and lower cases the
// rest, treating any of ' - / " ( as a word break.
func DisplayCase(s string) string {
	var b strings.Builder
	capNext := true
	for _, r := range s {
		if capNext {
			r = unicode.ToUpper(r)
		} else {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		capNext = strings.ContainsRune(capitalizeAfter, r)
	}
	return b.String()
}
