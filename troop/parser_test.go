package troop

import (
	"errors"
	"strings"
	"testing"
)

func mustParseNode(t *testing.T, input string) *Node {
	t.Helper()
	n, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return n
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ps", "Unit Ps\n"},
		{"3xSp", "Multiple 3\n  Unit Sp\n"},
		{"2x2xSp", "Multiple 2\n  Multiple 2\n    Unit Sp\n"},
		{"((Ps))", "Group\n  Group\n    Unit Ps\n"},
		{"3/4Bw", "EitherUnit 3/4Bw\n"},
		{"Kn//Cb", "Dismount\n  Unit Kn\n  Unit Cb\n"},
		{"Gen+Bd+Sp", "And\n  Unit Gen\n  Unit Bd\n  Unit Sp\n"},
		{"Ax or Bd + Cv or Hd", "Or\n  Unit Ax\n  And\n    Unit Bd\n    Unit Cv\n  Unit Hd\n"},
		{"Ax + Bd or Cv + Hd", "Or\n  And\n    Unit Ax\n    Unit Bd\n  And\n    Unit Cv\n    Unit Hd\n"},
		{"Ax/Bd+Cv", "And\n  Either\n    Unit Ax\n    Unit Bd\n  Unit Cv\n"},
		{"Cv//Wb/Sp", "Either\n  Dismount\n    Unit Cv\n    Unit Wb\n  Unit Sp\n"},
		{"2x3Ax/4Ax", "Either\n  Multiple 2\n    Unit 3Ax\n  Unit 4Ax\n"},
		{"Ax or Bd,Cv", "List\n  Or\n    Unit Ax\n    Unit Bd\n  Unit Cv\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := mustParseNode(t, tt.input)
			if got := n.Dump(); got != tt.want {
				t.Errorf("Dump() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestParseEitherUnitChildren(t *testing.T) {
	n := mustParseNode(t, "3/4Wb")
	if n.Kind != KindEitherUnit {
		t.Fatalf("Kind = %v, want EitherUnit", n.Kind)
	}
	if n.Code != "Wb" || n.Count != 3 {
		t.Errorf("Code, Count = %q, %d, want Wb, 3", n.Code, n.Count)
	}
	if got := n.Children[0].Code + "," + n.Children[1].Code; got != "3Wb,4Wb" {
		t.Errorf("children = %s, want 3Wb,4Wb", got)
	}
}

func TestParseChildren(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Ax,Bd,Cv", []string{"Ax", "Bd", "Cv"}},
		{"Ax//Bd", []string{"Ax", "Bd"}},
		{"Ax/Bd", []string{"Ax", "Bd"}},
		{"(Ax)", []string{"Ax"}},
		{"3xCv", []string{"Cv"}},
		{"Ax+Bd+Cv+Hd", []string{"Ax", "Bd", "Cv", "Hd"}},
		{"Ax or Bd or Cv", []string{"Ax", "Bd", "Cv"}},
		{"Ax or Bd + Cv or Hd", []string{"Ax", "Bd+Cv", "Hd"}},
		{"Ax + Bd or Cv + Hd", []string{"Ax+Bd", "Cv+Hd"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			children := Children(mustParseNode(t, tt.input))
			if len(children) != len(tt.want) {
				t.Fatalf("got %d children, want %d", len(children), len(tt.want))
			}
			for i, child := range children {
				if got := child.String(); got != tt.want[i] {
					t.Errorf("child %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		contains []string
	}{
		{"3/500Ax", []string{"Parse error", "expecting"}},
		{"(Ps", []string{"Parse error", "expecting ')'"}},
		{"Ps)", []string{"Parse error", "expecting"}},
		{"3Ps", []string{"Parse error", "expecting one of {'x', '/'}"}},
		{"0xPs", []string{"Parse error", "positive"}},
		{"3/Wb", []string{"Parse error", "no count prefix"}},
		{"2/4Wb", []string{"Parse error", "'2Wb' is not a unit code"}},
		{"Cv,", []string{"Parse error", "expecting one of {UNIT_CODE, INTEGER, '('}"}},
		{"+Cv", []string{"Parse error", "got '+'"}},
		{"Cv x Wb", []string{"Parse error"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewParser(tt.input).Parse()
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %v, want *ParseError", err)
			}
			for _, s := range tt.contains {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not contain %q", err, s)
				}
			}
		})
	}
}

func TestParseCardinality(t *testing.T) {
	for _, input := range []string{"Cv/Wb/Sp", "Cv//Wb//Sp", "3/4Wb/Bd", "Bd/3/4Wb", "Cv,3/4Wb/Bd"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewParser(input).Parse()
			var cardErr *CardinalityError
			if !errors.As(err, &cardErr) {
				t.Fatalf("got %v, want *CardinalityError", err)
			}
			if !strings.Contains(err.Error(), "cardinality 2") {
				t.Errorf("error %q does not contain %q", err, "cardinality 2")
			}
		})
	}
}

func TestParseStartLine(t *testing.T) {
	_, err := NewParser("Cv,(Ps", WithStartLine(7)).Parse()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if !strings.Contains(err.Error(), "at 7:") {
		t.Errorf("error %q not reported on line 7", err)
	}
}

func TestPrintRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3xSp", "3xSp"},
		{"     Ps ", "Ps"},
		{"4x3Pk", "4x3Pk"},
		{"2x2xSp", "2x2xSp"},
		{"(Bd)", "(Bd)"},
		{"2x(Bd)", "2x(Bd)"},
		{"((Ps))", "((Ps))"},
		{"3/4Bw", "3/4Bw"},
		{"Bw/Cb", "Bw/Cb"},
		{"Kn//Cb", "Kn//Cb"},
		{"Gen+Bd+Sp", "Gen+Bd+Sp"},
		{"AxorHd", "AxorHd"},
		{"3Ax or 4Ax or Hd", "3Axor4AxorHd"},
		{"Gen,Cv,(LH+Bw)", "Gen,Cv,(LH+Bw)"},
		{"Cv//4Wb,7x4Wb,3x3Bw or 7Hd,1xPs", "Cv//4Wb,7x4Wb,3x3Bwor7Hd,1xPs"},
		{"2xSp or (1 x Cv + 1 x El)", "2xSpor(1xCv+1xEl)"},
		{"1x (Cv/6Cv),5x(6Cv/Cv),3xLH or Sp", "1x(Cv/6Cv),5x(6Cv/Cv),3xLHorSp"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n := mustParseNode(t, tt.input)
			got := n.String()
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if again := mustParseNode(t, got).String(); again != got {
				t.Errorf("reparse String() = %q, want fixed point %q", again, got)
			}
		})
	}
}

func TestPrintArmyLists(t *testing.T) {
	armies := []string{
		"3Bd or 3/4Bw,6x3Ax/3Wb,3xPs,1xPs,1xPs",
		"3Pk or Sp,3xPk or Sp,2x4Bw,2x4Bw or 3Ax,4xPs",
		"Cv,Cv,7xSp/4Ax,3xPs",
		"LCh or 3Kn,2x3Kn,2xLH,4xSp or 4Ax,3xPs",
		"HCh/Sp or Cv,3xHCh/Sp or Sp,5xSp,3xPs",
		"3Kn,1xLH,6x4Pk,2x3Ax/4Ax,2xSp or (1xCv+1xEl),1xPs or Art",
		"El or 3Kn,2x3Kn,1xEl or 3Kn,2x3Bd,3x3Bw,1xCm or 3Bw,1xPs,1xPs or 7Hd",
		"Kn//Sp,4xKn//Sp,3xKn//Sp or Cv,1xCv or Sp or LH or Ps or 3Bd,1xPs or Cv,2xKn//Sp or LH",
		"Cv,5xCv,3xCv or LH,1xLH or Ps,2xCv or 2x7Hd or (1x7Hd + 1x4Wb)",
		"Cv or 4Bd or CP,2x3Bw,7x4Bd,1xPs or LCm,1xLH or Cm/Bd",
		"3/4Bd or Cv,4x4Bd,2xPs or 3Bw,2x5Hd,2xPs,1xLH or Art or 3Bd",
		"Lit or 4Bw,1x4Bd,5x3Bw,2xPs,3x5Hd",
	}

	for _, army := range armies {
		t.Run(army, func(t *testing.T) {
			want := strings.Join(strings.Fields(army), "")
			if got := mustParseNode(t, army).String(); got != want {
				t.Errorf("String() = %q, want %q", got, want)
			}
		})
	}
}

func TestParseTerminals(t *testing.T) {
	for _, code := range vocabulary {
		n := mustParseNode(t, code)
		if n.Kind != KindUnit || n.Code != code {
			t.Errorf("Parse(%q) = %v %q, want Unit", code, n.Kind, n.Code)
		}
	}
}
