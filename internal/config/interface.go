package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads manifest files from the given paths and translates them
	// into the format-agnostic model. A path may be a single file or a
	// directory scanned recursively.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
