package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Labels go to outW; diagnostics go to the logger, which writes
// to a separate stream so the emitted sequence stays machine-readable.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. It configures an
// isolated logger and loads the bundle manifest through the provided
// loader. A failure to load the manifest is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load bundle manifest: %w", err))
	}
	logger.Debug("Manifest loaded and translated into unified model.",
		"module_count", len(model.Modules))

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
