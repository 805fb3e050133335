package traverse

import (
	"context"

	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/graph"
)

// Walk performs a depth-first, visited-once traversal of g starting at root
// and returns the labels of every reachable node in first-visit order. A
// node's label is emitted before any of its descendants' (pre-order).
//
// The visited check doubles as the termination guarantee: no node is ever
// entered twice, so a node shared by several import paths (or reached
// through a cycle) appears exactly once, attributed to its first discoverer,
// and total work is bounded by the reachable nodes and edges. The visited
// set lives and dies with one call; nothing is shared across invocations.
//
// Walk never fails. An edge target the graph does not know simply has no
// children to descend into.
func Walk(ctx context.Context, g *graph.Graph, root graph.Node) []string {
	visited := make(map[graph.Node]bool)
	labels := make([]string, 0, g.Len())

	var visit func(n graph.Node)
	visit = func(n graph.Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		labels = append(labels, n.Label())

		for _, child := range g.Outgoing(n) {
			visit(child)
		}
	}
	visit(root)

	ctxlog.FromContext(ctx).Debug("Walk complete.", "visited", len(labels))
	return labels
}
