package army

import (
	"fmt"
	"regexp"
	"strconv"
)

type Era int

const (
	BC Era = iota
	AD
)

func (e Era) String() string {
	if e == AD {
		return "AD"
	}
	return "BC"
}

// Year is an unsigned year with its era. There is no year zero.
type Year struct {
	Value int
	Era   Era
}

// Earliest and latest years covered by the army lists.
var (
	EarlyYear = Year{Value: 3000, Era: BC}
	LateYear  = Year{Value: 1580, Era: AD}
)

func NewYear(value int, era Era) (Year, error) {
	if value < 1 {
		return Year{}, fmt.Errorf("year (1..N)=%d", value)
	}
	return Year{Value: value, Era: era}, nil
}

func (y Year) String() string {
	return strconv.Itoa(y.Value) + y.Era.String()
}

func (y Year) MarshalText() ([]byte, error) {
	return []byte(y.String()), nil
}

func (y *Year) UnmarshalText(text []byte) error {
	parsed, err := ParseYear(string(text))
	if err != nil {
		return err
	}
	*y = parsed
	return nil
}

// Compare orders years chronologically: every BC year precedes every AD
// year, and BC years count down.
func (y Year) Compare(other Year) int {
	if y.Era != other.Era {
		return cmpInt(int(y.Era), int(other.Era))
	}
	if y.Era == BC {
		return cmpInt(other.Value, y.Value)
	}
	return cmpInt(y.Value, other.Value)
}

// Before reports whether y is strictly earlier than other.
func (y Year) Before(other Year) bool {
	return y.Compare(other) < 0
}

var yearPattern = regexp.MustCompile(`^\s*(\d+)\s*(BC|AD)\s*$`)

// ParseYear parses "44BC" or "79 AD". The era is required.
func ParseYear(s string) (Year, error) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return Year{}, fmt.Errorf("parse of year %q", s)
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return Year{}, fmt.Errorf("parse of year %q: %w", s, err)
	}
	era := BC
	if m[2] == "AD" {
		era = AD
	}
	return NewYear(value, era)
}

func MustParseYear(s string) Year {
	y, err := ParseYear(s)
	if err != nil {
		panic(err)
	}
	return y
}
