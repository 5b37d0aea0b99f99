package machina

import "testing"

func TestStateKind_String(t *testing.T) {
	cases := map[StateKind]string{
		KindRegular:   "regular",
		KindInitial:   "initial",
		KindChoice:    "choice",
		KindFinal:     "final",
		StateKind(99): "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q for kind %d, got %q", want, int(kind), got)
		}
	}
}

func TestState_IsPseudo(t *testing.T) {
	cases := map[StateKind]bool{
		KindRegular: false,
		KindInitial: true,
		KindChoice:  true,
		KindFinal:   false,
	}
	for kind, want := range cases {
		state := &State{Name: "s", Kind: kind}
		if got := state.IsPseudo(); got != want {
			t.Errorf("Expected IsPseudo=%v for %s, got %v", want, kind, got)
		}
	}
}

func TestState_IsFinal(t *testing.T) {
	if !(&State{Kind: KindFinal}).IsFinal() {
		t.Error("Expected final state to be final")
	}
	if (&State{Kind: KindRegular}).IsFinal() {
		t.Error("Expected regular state not to be final")
	}
}
