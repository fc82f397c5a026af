package troop

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		parse func() (*Expression, error)
		want  string
	}{
		{"null", func() (*Expression, error) { return ParsePtr(nil) }, "null"},
		{"empty", func() (*Expression, error) { return Parse("") }, "empty"},
		{"blank", func() (*Expression, error) { return Parse(" \t\n") }, "blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse()
			var emptyErr *EmptyInputError
			if !errors.As(err, &emptyErr) {
				t.Fatalf("got %v, want *EmptyInputError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}

	s := "Ps"
	if _, err := ParsePtr(&s); err != nil {
		t.Errorf("ParsePtr(&%q) error: %v", s, err)
	}
}

func TestExpressionSource(t *testing.T) {
	e := MustParse("     Ps ")
	if got := e.Source(); got != "     Ps " {
		t.Errorf("Source() = %q, want %q", got, "     Ps ")
	}
	if got := e.String(); got != "Ps" {
		t.Errorf("String() = %q, want %q", got, "Ps")
	}
	text, _ := e.MarshalText()
	if string(text) != "Ps" {
		t.Errorf("MarshalText() = %q, want %q", text, "Ps")
	}
}

func TestExpressionEquality(t *testing.T) {
	e := MustParse("Cv//4Wb,7x4Wb")

	if e.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
	if e.Equal(MustParse("Cv/4Wb,4x4Wb")) {
		t.Error("Equal(Cv/4Wb,4x4Wb) = true")
	}
	if !e.Equal(MustParse("Cv // 4Wb, 7x4Wb")) {
		t.Error("Equal(Cv // 4Wb, 7x4Wb) = false")
	}
	if e.Key() != MustParse("Cv//4Wb,7x4Wb").Key() {
		t.Error("equal expressions have different keys")
	}
	if got := e.Compare(MustParse("Cv//4Wb,7x4Wb")); got != 0 {
		t.Errorf("Compare(same) = %d, want 0", got)
	}
	if got := e.Compare(nil); got != -1 {
		t.Errorf("Compare(nil) = %d, want -1", got)
	}
	if got := e.Compare(MustParse("Ax")); got <= 0 {
		t.Errorf("Compare(Ax) = %d, want > 0", got)
	}
	if got := e.Compare(MustParse("Wb")); got >= 0 {
		t.Errorf("Compare(Wb) = %d, want < 0", got)
	}
}

func TestExpressionUnitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Cv//4Wb,7x4Wb,3x3Bw or 7Hd,1xPs", []string{"Cv", "4Wb", "4Wb", "3Bw", "7Hd", "Ps"}},
		{
			"El or 3Kn,2x3Kn,1xEl or 3Kn,2x3Bd,3x3Bw,1xCm or 3Bw,1xPs,1xPs or 7Hd",
			[]string{"El", "3Kn", "3Kn", "El", "3Kn", "3Bd", "3Bw", "Cm", "3Bw", "Ps", "Ps", "7Hd"},
		},
		{"1xBd,(2xBd),4xBd", []string{"Bd", "Bd", "Bd"}},
		{"3/4Bw", []string{"3Bw", "4Bw"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).UnitList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UnitList() = %q, want %q", got, tt.want)
			}
		})
	}

	a, b := MustParse("Ax+Bd+Cv").UnitList(), MustParse("Ax,Bd,Cv").UnitList()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("UnitList(Ax+Bd+Cv) = %q, UnitList(Ax,Bd,Cv) = %q", a, b)
	}
}

func TestExpressionContainsAllUnits(t *testing.T) {
	tests := []struct {
		expr  string
		other string
		want  bool
	}{
		{"Ps,Wb", "Wb,Ps", true},
		{"Ps,Wb", "Wb,Bd", false},
		{"Ps,Wb", "Ps,Ps", false},
		{"Ps,Ps,Wb", "Ps,Ps", true},
		{"3/4Wb,Ps", "4Wb", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr+" contains "+tt.other, func(t *testing.T) {
			got, err := MustParse(tt.expr).ContainsAllUnitsString(tt.other)
			if err != nil {
				t.Fatalf("ContainsAllUnitsString error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ContainsAllUnits(%q, %q) = %v, want %v", tt.expr, tt.other, got, tt.want)
			}
		})
	}
}

func TestExpressionContainsUnit(t *testing.T) {
	e := MustParse("Kn/(2xLCh or WWg),Ps")
	for _, code := range []string{"Kn", "LCh", "WWg", "Ps"} {
		if !e.ContainsUnit(code) {
			t.Errorf("ContainsUnit(%q) = false", code)
		}
	}
	if e.ContainsUnit("Cv") {
		t.Error("ContainsUnit(Cv) = true")
	}
}

func TestExpressionMatchesString(t *testing.T) {
	e := MustParse("Ax or Bd + Cv or Hd")

	got, err := e.MatchesString("Bd+Cv")
	if err != nil || !got {
		t.Errorf("MatchesString(Bd+Cv) = %v, %v, want true", got, err)
	}
	got, err = e.MatchesString("Bd+Hd")
	if err != nil || got {
		t.Errorf("MatchesString(Bd+Hd) = %v, %v, want false", got, err)
	}
	if _, err := e.MatchesString("3/500Ax"); err == nil {
		t.Error("MatchesString(3/500Ax) did not fail")
	}
	if e.Matches(nil) {
		t.Error("Matches(nil) = true")
	}

	ok, err := MustParse("Cv/Wb").IsInstanceString("Wb")
	if err != nil || !ok {
		t.Errorf("IsInstanceString(Wb) = %v, %v, want true", ok, err)
	}
}

func TestExpressionPermute(t *testing.T) {
	e := MustParse("Ax or Bd,Cv")
	if got, want := e.Permute(), []string{"Ax,Cv", "Bd,Cv"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Permute() = %q, want %q", got, want)
	}
	if got := e.PermutationCount(); got != 2 {
		t.Errorf("PermutationCount() = %d, want 2", got)
	}
	if _, err := e.PermuteLimit(1); !errors.Is(err, ErrTooManyPermutations) {
		t.Errorf("PermuteLimit(1) error = %v, want ErrTooManyPermutations", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("(Ps")
}
