package production

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node describes one state's position in a tree for visualization only.
// The runtime itself (qpgo.State) carries no static parent/child
// pointers — which ancestor a state reports is a runtime property of its
// Handler, discovered by invoking it with the EMPTY signal — so a
// Visualizer caller builds this shadow tree once, by hand, to describe
// the topology it wants rendered.
type Node struct {
	Name     string
	Children []*Node
}

// Visualizer renders a Node tree as Graphviz DOT or JSON, highlighting
// the given active state names.
//
// Adapted from the teacher's DefaultVisualizer, which rendered the old
// engine's MachineConfig/StateConfig tree; the traversal shape (cluster
// per compound state, active-state highlighting, one edge per labeled
// transition) is kept, driven by Node instead.
type Visualizer struct{}

// Edge is one transition arrow to render alongside the state tree.
type Edge struct {
	From  string
	To    string
	Label string
}

// ExportDOT generates Graphviz DOT source for root, highlighting the
// states named in active and drawing the given edges.
func (Visualizer) ExportDOT(root *Node, active []string, edges []Edge) string {
	activeSet := make(map[string]bool, len(active))
	for _, a := range active {
		activeSet[a] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Statechart {\n  rankdir=LR;\n  node [shape=box, fontsize=10, style=rounded];\n  edge [fontsize=9];\n")
	renderNode(&buf, root, activeSet)
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func renderNode(buf *bytes.Buffer, n *Node, active map[string]bool) {
	if len(n.Children) > 0 {
		fmt.Fprintf(buf, "  subgraph cluster_%s {\n    label=%q;\n", n.Name, n.Name)
		style := ""
		if active[n.Name] {
			style = " style=filled fillcolor=orange"
		}
		fmt.Fprintf(buf, "    %q [shape=ellipse%s];\n", n.Name, style)
		for _, c := range n.Children {
			renderNode(buf, c, active)
		}
		buf.WriteString("  }\n")
		return
	}
	style := ""
	if active[n.Name] {
		style = " style=filled fillcolor=lightgreen"
	}
	fmt.Fprintf(buf, "  %q [label=%q%s];\n", n.Name, n.Name, style)
}

// ExportJSON serializes the tree to indented JSON.
func (Visualizer) ExportJSON(root *Node) ([]byte, error) {
	return json.MarshalIndent(root, "", "  ")
}
