package app

import (
	"context"
	"fmt"

	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/graph"
	"github.com/vk/modgraphgo/internal/render"
	"github.com/vk/modgraphgo/internal/traverse"
)

// Run executes the main application logic: build the frozen bundle graph
// from the loaded model, walk it exactly once from the root, and emit the
// result. This is the single fixed invocation point of the traversal; the
// graph is never mutated once it leaves graph.Build.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	g := graph.Build(ctx, a.model)
	a.logger.Debug("Bundle graph built.", "node_count", g.Len())

	switch a.config.OutputFormat {
	case FormatMermaid:
		if _, err := fmt.Fprint(a.outW, render.Mermaid(g)); err != nil {
			return fmt.Errorf("failed to write graph rendering: %w", err)
		}
	default:
		labels := traverse.Walk(ctx, g, graph.Root())
		for _, label := range labels {
			if _, err := fmt.Fprintln(a.outW, label); err != nil {
				return fmt.Errorf("failed to write label sequence: %w", err)
			}
		}
		a.logger.Debug("Label sequence emitted.", "count", len(labels))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
