package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/ctxlog"
	"github.com/vk/modgraphgo/internal/fsutil"
	"github.com/vk/modgraphgo/internal/schema"
)

// manifestExtension is the file extension manifest files must carry.
const manifestExtension = ".hcl"

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every manifest file reachable from the given paths and
// translates the declared modules into the format-agnostic model. Module
// declarations accumulate across files in file order, so a bundle may be
// split over any number of manifests.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := fsutil.ResolvePath(path, manifestExtension)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No manifest files found in path.", "path", path)
			continue
		}
		for _, file := range files {
			modules, err := l.loadFile(file, parser)
			if err != nil {
				return nil, err
			}
			model.Modules = append(model.Modules, modules...)
		}
	}

	logger.Debug("Manifest loading complete.", "module_count", len(model.Modules))
	return model, nil
}

// loadFile parses a single manifest file and returns the modules it declares.
func (l *Loader) loadFile(filePath string, parser *hclparse.Parser) ([]*config.Module, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
	}

	var parsed schema.Manifest
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
	}

	modules := make([]*config.Module, 0, len(parsed.Modules))
	for _, m := range parsed.Modules {
		translated, err := translateModule(m)
		if err != nil {
			return nil, fmt.Errorf("in manifest file %s: %w", filePath, err)
		}
		modules = append(modules, translated)
	}
	return modules, nil
}
