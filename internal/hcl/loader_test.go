package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest writes an HCL manifest into dir and returns its path.
func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("single file with modules and imports", func(t *testing.T) {
		t.Parallel()
		manifest := `
module "src/app.luau" {
  entrypoint = true
  imports    = ["src/util/logger.luau", "src/state.luau"]
}

module "src/util/logger.luau" {}

module "src/state.luau" {
  imports = ["src/util/logger.luau"]
}
`
		path := writeManifest(t, t.TempDir(), "bundle.hcl", manifest)

		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, model.Modules, 3)

		app := model.Modules[0]
		assert.Equal(t, "src/app.luau", app.Source)
		assert.True(t, app.Entrypoint)
		assert.Equal(t, []string{"src/util/logger.luau", "src/state.luau"}, app.Imports)

		logger := model.Modules[1]
		assert.False(t, logger.Entrypoint)
		assert.Empty(t, logger.Imports)
	})

	t.Run("directory accumulates modules across files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeManifest(t, dir, "a.hcl", `module "a" { entrypoint = true }`)
		writeManifest(t, dir, "b.hcl", `module "b" { imports = ["a"] }`)

		model, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, model.Modules, 2)
		// File discovery is sorted, so module order is deterministic.
		assert.Equal(t, "a", model.Modules[0].Source)
		assert.Equal(t, "b", model.Modules[1].Source)
	})

	t.Run("empty imports list", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, t.TempDir(), "bundle.hcl", `module "a" { imports = [] }`)

		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, model.Modules, 1)
		assert.Empty(t, model.Modules[0].Imports)
	})

	t.Run("invalid HCL syntax is rejected", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, t.TempDir(), "bundle.hcl", `module "a" {`)

		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("imports of the wrong type are rejected", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, t.TempDir(), "bundle.hcl", `module "a" { imports = 42 }`)

		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "imports must be a list of strings")
	})

	t.Run("entrypoint of the wrong type is rejected", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, t.TempDir(), "bundle.hcl", `module "a" { entrypoint = ["nope"] }`)

		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entrypoint must be a bool")
	})

	t.Run("missing path is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve manifest path")
	})

	t.Run("null imports behave as absent", func(t *testing.T) {
		t.Parallel()
		path := writeManifest(t, t.TempDir(), "bundle.hcl", `module "a" { imports = null }`)

		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, model.Modules, 1)
		assert.Empty(t, model.Modules[0].Imports)
	})
}
