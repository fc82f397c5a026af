package troop

import (
	"strings"
	"testing"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar() error: %v", err)
	}
	for _, name := range []string{"List", "Or", "And", "Either", "Dismount", "Operand", "Group", "Multiple", "EitherUnit", "unit"} {
		if g[name] == nil {
			t.Errorf("production %s missing", name)
		}
	}
}

func TestGrammarTextListsVocabulary(t *testing.T) {
	text := GrammarText()
	for _, code := range []string{`"Mtd-8Lb"`, `"WWg"`, `"Gen"`} {
		if !strings.Contains(text, code) {
			t.Errorf("grammar does not list %s", code)
		}
	}
}
