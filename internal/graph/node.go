package graph

import "strings"

// RootLabel is the fixed display label of the synthetic root node.
const RootLabel = "root"

type nodeKind int

const (
	kindRoot nodeKind = iota
	kindModule
)

// Node identifies one vertex in the bundle graph. It is a small comparable
// value: two Nodes denote the same vertex exactly when they are equal. A
// Node is either the synthetic root, which carries no payload, or a module
// node carrying the module's opaque source identifier. The source is used
// for display only; traversal and edge bookkeeping rely solely on Node
// equality.
type Node struct {
	kind   nodeKind
	source string
}

// Root returns the synthetic root node.
func Root() Node {
	return Node{kind: kindRoot}
}

// Module returns the node identified by the given module source.
func Module(source string) Node {
	return Node{kind: kindModule, source: source}
}

// IsRoot reports whether the node is the synthetic root.
func (n Node) IsRoot() bool {
	return n.kind == kindRoot
}

// Source returns the module's opaque source identifier. It is empty for the
// root.
func (n Node) Source() string {
	return n.source
}

// Label returns the node's display string: RootLabel for the root, and the
// last path component of the source for a module node. A source with no
// path structure labels as itself.
func (n Node) Label() string {
	if n.kind == kindRoot {
		return RootLabel
	}
	if i := strings.LastIndex(n.source, "/"); i >= 0 {
		return n.source[i+1:]
	}
	return n.source
}

// String implements fmt.Stringer for log output.
func (n Node) String() string {
	if n.kind == kindRoot {
		return RootLabel
	}
	return "module." + n.source
}

// less defines the stable ordering used for child iteration: the root sorts
// first, module nodes sort lexically by source.
func (n Node) less(other Node) bool {
	if n.kind != other.kind {
		return n.kind < other.kind
	}
	return n.source < other.source
}
