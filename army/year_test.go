package army

import (
	"strings"
	"testing"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  Year
	}{
		{"44BC", Year{44, BC}},
		{"79AD", Year{79, AD}},
		{" 3000 BC ", Year{3000, BC}},
		{"1AD", Year{1, AD}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYear(tt.input)
			if err != nil {
				t.Fatalf("ParseYear(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseYear(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, input := range []string{"", "44", "0BC", "BC", "44 CE"} {
		if _, err := ParseYear(input); err == nil {
			t.Errorf("ParseYear(%q) did not fail", input)
		}
	}
}

func TestYearCompare(t *testing.T) {
	ordered := []string{"3000BC", "1000BC", "46BC", "45BC", "1BC", "1AD", "79AD", "1580AD"}
	for i := 0; i < len(ordered)-1; i++ {
		a, b := MustParseYear(ordered[i]), MustParseYear(ordered[i+1])
		if !a.Before(b) {
			t.Errorf("%s.Before(%s) = false", a, b)
		}
		if b.Compare(a) <= 0 {
			t.Errorf("%s.Compare(%s) = %d, want > 0", b, a, b.Compare(a))
		}
	}
	if MustParseYear("44BC").Compare(MustParseYear("44 BC")) != 0 {
		t.Error("44BC and 44 BC compare unequal")
	}
}

func TestNewYearRange(t *testing.T) {
	r, err := NewYearRange(Year{44, BC}, Year{79, AD})
	if err != nil {
		t.Fatalf("NewYearRange error: %v", err)
	}
	if got := r.String(); got != "44BC-79AD" {
		t.Errorf("String() = %q, want %q", got, "44BC-79AD")
	}

	_, err = NewYearRange(Year{79, AD}, Year{44, BC})
	if err == nil || !strings.Contains(err.Error(), "should be earlier than") {
		t.Errorf("NewYearRange(79AD, 44BC) error = %v", err)
	}
}

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"44BC-79AD", "44BC-79AD"},
		{" 44 BC -     79AD   ", "44BC-79AD"},
		{"44 -79AD", "44AD-79AD"},
		{"144BC-79 ", "144BC-79BC"},
		{"1000 BC - 650 BC", "1000BC-650BC"},
		{"1100 - 701 BC", "1100BC-701BC"},
		{"3000 BC to 1001 BC", "3000BC-1001BC"},
		{"310 BC - 107 BC & 10 BC - 375 AD", "310BC-375AD"},
		{"CIRCA 2250BC", "2300BC-2200BC"},
		{"circa 800AD", "750AD-850AD"},
		{"before 500BC", "3000BC-500BC"},
		{"AFTER 1400AD", "1400AD-1580AD"},
		{"1066AD", "1066AD-1066AD"},
		{"420-203 BC", "420BC-203BC"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseYearRange(tt.input)
			if err != nil {
				t.Fatalf("ParseYearRange(%q) error: %v", tt.input, err)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("ParseYearRange(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseYearRangeErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"44-79", "parse of year"},
		{" BC - AD ", "zero years"},
		{"79AD-44BC", "should be earlier than"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseYearRange(tt.input)
			if err == nil {
				t.Fatalf("ParseYearRange(%q) did not fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}

func TestYearRangeContains(t *testing.T) {
	r := MustParseYearRange("45BC-79AD")
	tests := []struct {
		year string
		want bool
	}{
		{"46BC", false},
		{"45BC", true},
		{"44BC", true},
		{"1BC", true},
		{"1AD", true},
		{"78AD", true},
		{"79AD", true},
		{"80AD", false},
	}
	for _, tt := range tests {
		if got := r.Contains(MustParseYear(tt.year)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.year, got, tt.want)
		}
	}
}
