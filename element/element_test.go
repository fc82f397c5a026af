package element

import (
	"errors"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ    Type
		name   string
		proper string
	}{
		{Elephants, "ELEPHANTS", "Elephants"},
		{LightHorse, "LIGHT_HORSE", "Light Horse"},
		{ScythedChariots, "SCYTHED_CHARIOTS", "Scythed Chariots"},
		{WarWagons, "WAR_WAGONS", "War Wagons"},
		{General, "GENERAL", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.typ.ProperCase(); got != tt.proper {
				t.Errorf("ProperCase() = %q, want %q", got, tt.proper)
			}
		})
	}
	if got := Type(99).String(); got != "UNKNOWN" {
		t.Errorf("Type(99).String() = %q, want UNKNOWN", got)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		code string
		want Type
	}{
		{"El", Elephants},
		{"6Kn", Knights},
		{"LCh", Cavalry},
		{"LCm", LightHorse},
		{"Mtd-4Bw", MountedInfantry},
		{"8Sp", Spears},
		{"8Lb", Bows},
		{"7Hd", Hordes},
		{"WWg", WarWagons},
		{"Gen", General},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := TypeOf(tt.code)
			if !ok {
				t.Fatalf("TypeOf(%q) not found", tt.code)
			}
			if got != tt.want {
				t.Errorf("TypeOf(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}

	if _, ok := TypeOf("Xx"); ok {
		t.Error("TypeOf(Xx) should not be found")
	}
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"WAR_WAGONS", "war wagons", "WWg"} {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", in, err)
		}
		if got != WarWagons {
			t.Errorf("ParseType(%q) = %v, want WAR_WAGONS", in, got)
		}
	}

	_, err := ParseType("")
	if !errors.Is(err, ErrUnknownElement) {
		t.Errorf("ParseType(\"\") error = %v, want ErrUnknownElement", err)
	}
}

func TestVocabularyLongestFirst(t *testing.T) {
	vocab := Vocabulary()
	if len(vocab) != len(AllCodes()) {
		t.Fatalf("len(Vocabulary()) = %d, want %d", len(vocab), len(AllCodes()))
	}
	for i := 1; i < len(vocab); i++ {
		if len(vocab[i]) > len(vocab[i-1]) {
			t.Fatalf("vocabulary not ordered by length at %d: %q after %q", i, vocab[i], vocab[i-1])
		}
	}
	if vocab[0][:4] != "Mtd-" {
		t.Errorf("Vocabulary()[0] = %q, want a mounted infantry code", vocab[0])
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		yes  []string
		no   []string
	}{
		{"IsDouble", IsDouble, []string{"6Kn", "8Bw", "Mtd-8Lb"}, []string{"Kn", "4Bw"}},
		{"IsFast", IsFast, []string{"3Pk", "Ps", "5Hd"}, []string{"4Pk", "7Hd"}},
		{"IsSolid", IsSolid, []string{"Sp", "4Wb", "7Hd"}, []string{"3Wb", "Ps"}},
		{"CanDismount", CanDismount, []string{"4Kn", "Mtd-3Bw"}, []string{"3Kn", "Cv"}},
		{"IsMounted", IsMounted, []string{"El", "LH", "Mtd-4Cb"}, []string{"Sp", "Gen", "Xx"}},
		{"IsFoot", IsFoot, []string{"Sp", "Ps", "Art"}, []string{"Cv", "Xx"}},
		{"IsCamel", IsCamel, []string{"Cm", "LCm"}, []string{"Cv"}},
		{"IsChariot", IsChariot, []string{"HCh", "LCh", "SCh"}, []string{"Kn"}},
		{"IsMissile", IsMissile, []string{"LH", "3Bw", "Lb", "WWg", "Mtd-4Bw"}, []string{"Sp", "Bd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, code := range tt.yes {
				if !tt.fn(code) {
					t.Errorf("%s(%q) = false, want true", tt.name, code)
				}
			}
			for _, code := range tt.no {
				if tt.fn(code) {
					t.Errorf("%s(%q) = true, want false", tt.name, code)
				}
			}
		})
	}
}

func TestBase(t *testing.T) {
	tests := map[string]string{
		"4Bw":     "Bw",
		"Mtd-8Lb": "Lb",
		"Cv":      "Cv",
		"7Hd":     "Hd",
	}
	for in, want := range tests {
		if got := Base(in); got != want {
			t.Errorf("Base(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{"WW", "WWg"},
		{"Cvv", "Cv"},
		{"", ""},
		{"Zzzzzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			if got := Suggest(tt.fragment); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}
