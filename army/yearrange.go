package army

import (
	"fmt"
	"regexp"
	"strings"
)

// circaSpan is how far either side of a "circa" year a range extends.
const circaSpan = 50

// YearRange is an inclusive range of years with Begin no later than End.
type YearRange struct {
	Begin Year
	End   Year
}

func NewYearRange(begin, end Year) (YearRange, error) {
	if begin.Compare(end) > 0 {
		return YearRange{}, fmt.Errorf("begin year %s should be earlier than end year %s", begin, end)
	}
	return YearRange{Begin: begin, End: end}, nil
}

func (r YearRange) String() string {
	return r.Begin.String() + "-" + r.End.String()
}

func (r YearRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Contains reports whether y lies within the range, both ends included.
func (r YearRange) Contains(y Year) bool {
	return y.Compare(r.Begin) >= 0 && y.Compare(r.End) <= 0
}

// Compare orders ranges by their beginning.
func (r YearRange) Compare(other YearRange) int {
	return r.Begin.Compare(other.Begin)
}

var rangePattern = regexp.MustCompile(`(?i:(circa|before|after)\s*)?(\d+)\s*(BC|AD)?`)

type rangeYear struct {
	modifier string
	value    string
	era      string
}

// ParseYearRange reads the years out of a heading fragment such as
// "1000 BC - 650 BC", "1100 - 701 BC" or "CIRCA 2250BC".
//
// A single year forms a one-year range unless it carries a modifier:
// "before" extends it back to EarlyYear, "after" forward to LateYear, and
// "circa" by fifty years each way. With several years the first and last
// are used, and a missing era is taken from the other end.
func ParseYearRange(s string) (YearRange, error) {
	var years []rangeYear
	for _, m := range rangePattern.FindAllStringSubmatch(s, -1) {
		years = append(years, rangeYear{modifier: strings.ToLower(m[1]), value: m[2], era: m[3]})
	}

	switch len(years) {
	case 0:
		return YearRange{}, fmt.Errorf("found zero years in %q", s)
	case 1:
		return singleYearRange(years[0])
	}
	return fillMissingEra(years[0], years[len(years)-1])
}

func singleYearRange(ry rangeYear) (YearRange, error) {
	y, err := ParseYear(ry.value + ry.era)
	if err != nil {
		return YearRange{}, err
	}
	switch ry.modifier {
	case "before":
		return NewYearRange(EarlyYear, y)
	case "after":
		return NewYearRange(y, LateYear)
	case "circa":
		if y.Era == AD {
			begin, err := NewYear(y.Value-circaSpan, AD)
			if err != nil {
				return YearRange{}, err
			}
			return NewYearRange(begin, Year{Value: y.Value + circaSpan, Era: AD})
		}
		end, err := NewYear(y.Value-circaSpan, BC)
		if err != nil {
			return YearRange{}, err
		}
		return NewYearRange(Year{Value: y.Value + circaSpan, Era: BC}, end)
	}
	return NewYearRange(y, y)
}

func fillMissingEra(begin, end rangeYear) (YearRange, error) {
	switch {
	case begin.era != "" && end.era == "":
		end.era = begin.era
	case begin.era == "" && end.era != "":
		begin.era = end.era
	}
	b, err := ParseYear(begin.value + begin.era)
	if err != nil {
		return YearRange{}, err
	}
	e, err := ParseYear(end.value + end.era)
	if err != nil {
		return YearRange{}, err
	}
	return NewYearRange(b, e)
}

func MustParseYearRange(s string) YearRange {
	r, err := ParseYearRange(s)
	if err != nil {
		panic(err)
	}
	return r
}
