// Package render turns a frozen bundle graph into diagram text for human
// consumption.
package render

import (
	"fmt"
	"strings"

	"github.com/vk/modgraphgo/internal/graph"
)

// Mermaid renders the graph as a mermaid `graph TD` flowchart. Nodes and
// edges are emitted in the graph's stable order, so the rendering is
// deterministic for a fixed graph. Edge targets the manifest never declared
// are rendered like any other leaf.
func Mermaid(g *graph.Graph) string {
	ids := make(map[graph.Node]string)
	var order []graph.Node

	assign := func(n graph.Node) string {
		if id, ok := ids[n]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[n] = id
		order = append(order, n)
		return id
	}

	// Assign ids to members first, then to edge-only targets as they appear.
	type edge struct{ from, to string }
	var edges []edge
	for _, n := range g.Nodes() {
		assign(n)
	}
	for _, n := range g.Nodes() {
		for _, child := range g.Outgoing(n) {
			edges = append(edges, edge{from: assign(n), to: assign(child)})
		}
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	for _, n := range order {
		fmt.Fprintf(&sb, "    %s[%q]\n", ids[n], n.Label())
	}
	for _, e := range edges {
		fmt.Fprintf(&sb, "    %s --> %s\n", e.from, e.to)
	}
	return sb.String()
}
