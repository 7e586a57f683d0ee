// Package craftgraph - DOT (Graphviz) rendering of the recipe graph.
package craftgraph

import (
	"fmt"
	"strings"
)

// ToDOT renders the graph as a Graphviz digraph. Potion nodes are boxes,
// requirement nodes are ellipses; output is deterministic (nodes and edges
// emitted in sorted ID order), so renders diff cleanly across runs.
//
// Complexity: O(V + E).
func ToDOT(g *Graph) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}

	var b strings.Builder
	b.WriteString("digraph recipes {\n")
	b.WriteString("\trankdir=LR;\n")

	// Nodes first, potion boxes then requirement ellipses.
	for _, id := range g.PotionNodes() {
		n, err := g.Node(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\t%q [shape=box,label=%q];\n", string(id), n.Potion.String())
	}
	for _, id := range g.RequirementNodes() {
		n, err := g.Node(id)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\t%q [shape=ellipse,label=%q];\n", string(id), n.Requirement.String())
	}

	// Edges in sorted (from, to) order.
	for _, from := range g.Nodes() {
		next, err := g.Successors(from)
		if err != nil {
			return "", err
		}
		for _, to := range next {
			fmt.Fprintf(&b, "\t%q -> %q;\n", string(from), string(to))
		}
	}
	b.WriteString("}\n")

	return b.String(), nil
}
