package visualization

import (
	"strings"
	"testing"

	"github.com/anggasct/machina"
)

func buildTestMachine(t *testing.T) *machina.StateMachine {
	t.Helper()

	machine, err := machina.Compile(machina.Definition{
		Name:    "doorway",
		Initial: machina.InitialDef{To: "locked"},
		States: []machina.StateDef{
			{Name: "locked", Transitions: []machina.TransitionDef{
				{Trigger: "coin", To: "unlocked"},
			}},
			{Name: "unlocked", Transitions: []machina.TransitionDef{
				{Trigger: "push", Guard: func(obj machina.Stateful, payload any) bool { return true }, To: "locked"},
				{Trigger: "retire", To: machina.FinalStateName},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Expected no compile error, got: %v", err)
	}
	return machine
}

func TestDOTGenerator_Generate(t *testing.T) {
	generator := NewDOTGenerator(buildTestMachine(t))

	dot, err := generator.Generate()
	if err != nil {
		t.Fatalf("Expected no error generating DOT, got: %v", err)
	}

	for _, want := range []string{
		"digraph StateMachine {",
		"rankdir=TB;",
		`"locked"`,
		`"unlocked"`,
		`"initial"`,
		`"final"`,
		`"locked" -> "unlocked" [label="coin"];`,
		`"unlocked" -> "locked" [label="push [guard]"];`,
		`"initial" -> "locked" [label="*"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("Expected DOT output to contain %q, got:\n%s", want, dot)
		}
	}
}

func TestDOTGenerator_Options(t *testing.T) {
	options := DefaultDOTOptions()
	options.RankDirection = "LR"
	options.ShowTriggers = false
	options.ShowGuards = false

	generator := NewDOTGenerator(buildTestMachine(t), options)

	dot, err := generator.Generate()
	if err != nil {
		t.Fatalf("Expected no error generating DOT, got: %v", err)
	}

	if !strings.Contains(dot, "rankdir=LR;") {
		t.Error("Expected LR rank direction")
	}
	if strings.Contains(dot, "label=\"coin\"") {
		t.Error("Expected trigger labels suppressed")
	}
	if !strings.Contains(dot, `"locked" -> "unlocked";`) {
		t.Error("Expected unlabeled edges")
	}
}

func TestDOTGenerator_KindStyling(t *testing.T) {
	generator := NewDOTGenerator(buildTestMachine(t))

	dot, err := generator.Generate()
	if err != nil {
		t.Fatalf("Expected no error generating DOT, got: %v", err)
	}

	if !strings.Contains(dot, `"final" [shape=doublecircle`) {
		t.Error("Expected the final state drawn as a double circle")
	}
	if !strings.Contains(dot, `"initial" [shape=circle`) {
		t.Error("Expected the initial state drawn as a circle")
	}
}
