package app

import "errors"

// Output formats the app can emit.
const (
	// FormatLabels prints the traversal's label sequence, one per line.
	FormatLabels = "labels"
	// FormatMermaid prints the whole graph as a mermaid flowchart.
	FormatMermaid = "mermaid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl manifest file or directory

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = FormatLabels
	}

	return &cfg, nil
}
