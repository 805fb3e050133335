package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/modgraphgo/internal/graph"
)

func TestMermaid(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Module("a"))
	g.AddNode(graph.Module("b"))
	g.AddEdge(graph.Root(), graph.Module("a"))
	g.AddEdge(graph.Module("a"), graph.Module("b"))
	g.AddEdge(graph.Module("a"), graph.Module("ghost"))

	out := Mermaid(g)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `n0["root"]`)
	assert.Contains(t, out, `n1["a"]`)
	assert.Contains(t, out, `n2["b"]`)
	assert.Contains(t, out, `n3["ghost"]`, "edge-only targets render as leaves")
	assert.Contains(t, out, "n0 --> n1")
	assert.Contains(t, out, "n1 --> n2")
	assert.Contains(t, out, "n1 --> n3")

	// Deterministic for a fixed graph.
	assert.Equal(t, out, Mermaid(g))
}

func TestMermaid_RootOnly(t *testing.T) {
	out := Mermaid(graph.New())
	assert.Equal(t, "graph TD\n    n0[\"root\"]\n", out)
}
