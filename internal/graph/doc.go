// Package graph models a bundle's module dependency graph: a synthetic root
// plus one node per built module, with directed import edges between them.
//
// The graph is built once from the loaded manifest model, after which it is
// treated as a frozen snapshot. Duplicate edges between the same pair of
// nodes collapse to one (set semantics), and the graph may legally contain
// cycles; termination on cyclic input is the traversal engine's concern,
// not the graph's.
package graph
