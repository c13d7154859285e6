package latimes

import "testing"

func TestLexiconGetOrAssignIsStableAndDense(t *testing.T) {
	lex := NewLexicon()
	idQuick := lex.GetOrAssign("quick")
	idFox := lex.GetOrAssign("fox")
	idQuickAgain := lex.GetOrAssign("quick")

	if idQuickAgain != idQuick {
		t.Fatalf("GetOrAssign(%q) changed id across calls: %d != %d", "quick", idQuickAgain, idQuick)
	}
	if idFox == idQuick {
		t.Fatalf("distinct terms got the same id %d", idQuick)
	}
	if lex.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", lex.Len())
	}
	for _, id := range []int{idQuick, idFox} {
		if id < 0 || id >= lex.Len() {
			t.Fatalf("id %d outside dense range [0,%d)", id, lex.Len())
		}
	}
}

func TestLexiconBijection(t *testing.T) {
	lex := NewLexicon()
	terms := []string{"quick", "brown", "fox", "jump"}
	for _, term := range terms {
		id := lex.GetOrAssign(term)
		got, ok := lex.TermOf(id)
		if !ok || got != term {
			t.Fatalf("TermOf(GetOrAssign(%q)) = (%q, %v), want (%q, true)", term, got, ok, term)
		}
	}
}

func TestLexiconLookupMissing(t *testing.T) {
	lex := NewLexicon()
	lex.GetOrAssign("quick")
	if _, err := lex.Lookup("missing"); err != ErrTermNotFound {
		t.Fatalf("Lookup of absent term: err = %v, want ErrTermNotFound", err)
	}
}

func TestLexiconTermOfOutOfRange(t *testing.T) {
	lex := NewLexicon()
	lex.GetOrAssign("quick")
	if _, ok := lex.TermOf(5); ok {
		t.Fatalf("TermOf(5) reported ok for an unassigned id")
	}
	if _, ok := lex.TermOf(-1); ok {
		t.Fatalf("TermOf(-1) reported ok")
	}
}
