// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/modgraphgo/internal/config"
	"github.com/vk/modgraphgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translateModule converts an HCL module block into the agnostic model.
func translateModule(m *schema.Module) (*config.Module, error) {
	if m.Source == "" {
		return nil, fmt.Errorf("module block has an empty source label")
	}

	imports, err := evalImports(m.Imports)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", m.Source, err)
	}

	entrypoint, err := evalEntrypoint(m.Entrypoint)
	if err != nil {
		return nil, fmt.Errorf("module %q: %w", m.Source, err)
	}

	return &config.Module{
		Source:     m.Source,
		Entrypoint: entrypoint,
		Imports:    imports,
	}, nil
}

// evalImports statically evaluates the imports expression into a slice of
// module sources. Manifests are emitted by the build pipeline, so the
// expression must be fully known without an evaluation context.
func evalImports(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid imports expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("imports must be statically known")
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("imports must be a list of strings: %w", err)
	}

	imports := make([]string, 0, val.LengthInt())
	for _, v := range val.AsValueSlice() {
		if v.IsNull() {
			return nil, fmt.Errorf("imports must not contain null entries")
		}
		imports = append(imports, v.AsString())
	}
	return imports, nil
}

// evalEntrypoint statically evaluates the optional entrypoint expression.
// An absent or null attribute means false.
func evalEntrypoint(expr hcl.Expression) (bool, error) {
	if expr == nil {
		return false, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return false, fmt.Errorf("invalid entrypoint expression: %w", diags)
	}
	if val.IsNull() {
		return false, nil
	}

	val, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("entrypoint must be a bool: %w", err)
	}
	return val.True(), nil
}
