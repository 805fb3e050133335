package graph

import (
	"context"

	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
)

// Build constructs the bundle graph from a loaded manifest model. The model
// is complete at this point (the build pipeline only emits a manifest once
// every module has finished building), so construction is a pure two-pass
// translation: create one node per declared module, then link edges.
//
// Imports naming a module the manifest never declares are linked fail-soft:
// the edge is recorded and the unknown target resolves to an empty outgoing
// set during traversal.
func Build(ctx context.Context, model *config.Model) *Graph {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")

	g := New()

	// First pass: create all module nodes.
	for _, m := range model.Modules {
		node := Module(m.Source)
		if g.Exists(node) {
			logger.Warn("Duplicate module declaration found, merging.", "source", m.Source)
		}
		g.AddNode(node)
	}
	logger.Debug("Build: node creation complete.", "node_count", g.Len())

	// Second pass: link entrypoints to the root and imports between modules.
	for _, m := range model.Modules {
		node := Module(m.Source)
		if m.Entrypoint {
			g.AddEdge(Root(), node)
		}
		for _, imp := range m.Imports {
			target := Module(imp)
			if !g.Exists(target) {
				logger.Warn("Import references an undeclared module.",
					"module", m.Source, "import", imp)
			}
			g.AddEdge(node, target)
		}
	}
	logger.Debug("Build: edge linking complete.")

	return g
}
