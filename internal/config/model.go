package config

// Model is the unified, format-agnostic representation of a bundle manifest:
// the full set of modules the build pipeline produced, with their declared
// import edges.
type Model struct {
	Modules []*Module
}

// Module is the format-agnostic representation of a single `module` block.
type Module struct {
	// Source is the module's opaque identifier, typically a resource path.
	// It is used for display only; graph construction keys on it verbatim.
	Source string

	// Entrypoint marks a module the bundle exposes directly. Entrypoint
	// modules are attached to the synthetic root of the graph.
	Entrypoint bool

	// Imports lists the sources of modules this module imports. Entries may
	// repeat and may name modules the manifest never declares; both cases
	// are resolved by the graph builder, not here.
	Imports []string
}
