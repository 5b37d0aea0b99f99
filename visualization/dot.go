// Package visualization renders compiled state machines as Graphviz
// diagrams.
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/anggasct/machina"
)

// DOTGenerator generates Graphviz DOT format representations of state machines
type DOTGenerator struct {
	machine *machina.StateMachine
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowTriggers  bool
	ShowGuards    bool
	RankDirection string // "TB", "LR", "BT", "RL"
	NodeShape     string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowTriggers:  true,
		ShowGuards:    true,
		RankDirection: "TB",
		NodeShape:     "box",
	}
}

// NewDOTGenerator creates a new DOT generator for the given machine
func NewDOTGenerator(machine *machina.StateMachine, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		machine: machine,
		options: opts,
	}
}

// Generate creates a DOT representation of the state machine
func (g *DOTGenerator) Generate() (string, error) {
	var dot strings.Builder

	dot.WriteString("digraph StateMachine {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	states := g.machine.States()
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)

	dot.WriteString("  // States\n")
	for _, name := range names {
		g.generateStateNode(&dot, states[name])
	}

	dot.WriteString("\n  // Transitions\n")
	for _, name := range names {
		g.generateTransitions(&dot, states[name])
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

// generateStateNode generates a DOT node for a single state
func (g *DOTGenerator) generateStateNode(dot *strings.Builder, state *machina.State) {
	shape := g.options.NodeShape
	fillColor := "lightblue"
	label := state.Name

	switch state.Kind {
	case machina.KindInitial:
		shape = "circle"
		fillColor = "lightgreen"
	case machina.KindChoice:
		shape = "diamond"
		fillColor = "lightyellow"
	case machina.KindFinal:
		shape = "doublecircle"
		fillColor = "lightcoral"
	}

	dot.WriteString(fmt.Sprintf("  \"%s\" [shape=%s style=\"filled\" fillcolor=%s label=\"%s\"];\n",
		state.Name, shape, fillColor, label))
}

// generateTransitions generates DOT edges for a state's outgoing edges
func (g *DOTGenerator) generateTransitions(dot *strings.Builder, state *machina.State) {
	for _, edge := range state.Transitions {
		var parts []string
		if g.options.ShowTriggers {
			if edge.Trigger == "" {
				parts = append(parts, "*")
			} else {
				parts = append(parts, edge.Trigger)
			}
		}
		if g.options.ShowGuards && edge.Guard != nil {
			parts = append(parts, "[guard]")
		}

		if len(parts) > 0 {
			dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n",
				state.Name, edge.To, strings.Join(parts, " ")))
		} else {
			dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", state.Name, edge.To))
		}
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// SVGGenerator generates SVG representations by calling Graphviz
type SVGGenerator struct {
	dotGenerator *DOTGenerator
}

// NewSVGGenerator creates a new SVG generator
func NewSVGGenerator(machine *machina.StateMachine, options ...DOTOptions) *SVGGenerator {
	return &SVGGenerator{
		dotGenerator: NewDOTGenerator(machine, options...),
	}
}

// Generate creates an SVG representation of the state machine
func (g *SVGGenerator) Generate() (string, error) {
	dotContent, err := g.dotGenerator.Generate()
	if err != nil {
		return "", err
	}

	// Use Graphviz dot command to convert DOT to SVG
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}

// GenerateSVG creates an SVG representation of the state machine
// This is a convenience method on DOTGenerator for compatibility
func (g *DOTGenerator) GenerateSVG() (string, error) {
	svgGen := &SVGGenerator{dotGenerator: g}
	return svgGen.Generate()
}
