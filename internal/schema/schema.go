// Package schema defines the HCL decoding structures for bundle manifest
// files. These structs mirror the on-disk grammar exactly; translation into
// the format-agnostic config model happens in the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Module represents a `module` block from a bundle manifest. The block label
// is the module's source path, which doubles as its identity.
type Module struct {
	Source     string         `hcl:"source,label"`
	Entrypoint hcl.Expression `hcl:"entrypoint,optional"`
	Imports    hcl.Expression `hcl:"imports,optional"`
}

// Manifest represents the top-level structure of a single manifest file.
type Manifest struct {
	Modules []*Module `hcl:"module,block"`
	Body    hcl.Body  `hcl:",remain"`
}
