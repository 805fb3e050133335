package graph

import (
	"sort"
	"sync"
)

// Graph is a directed graph over Nodes, stored as a mapping from each node
// to its set of outgoing edge targets. Construction is concurrency-safe;
// once handed to a traversal the graph must no longer be mutated. That is a
// documented precondition of the single intended caller, not an enforced
// lock.
//
// A node referenced only as an edge target may be absent from the mapping;
// it behaves exactly like a node with an empty outgoing set. The root is
// always present.
type Graph struct {
	// mutex protects the edges map during concurrent construction.
	mutex sync.RWMutex
	// edges stores, per node, the deduplicated set of outgoing edge targets.
	edges map[Node]map[Node]struct{}
}

// New creates and returns an initialized Graph containing only the root.
func New() *Graph {
	return &Graph{
		edges: map[Node]map[Node]struct{}{
			Root(): {},
		},
	}
}

// AddNode adds the given node to the graph with an empty outgoing set. If
// the node is already present, the call does nothing.
func (g *Graph) AddNode(n Node) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.edges[n]; ok {
		return
	}
	g.edges[n] = make(map[Node]struct{})
}

// AddEdge records a directed edge from `from` to `to`. Repeated edges
// between the same pair collapse to one. The origin is added to the graph
// if missing; the target deliberately is not, so that an import of an
// undeclared module resolves to an empty outgoing set rather than an error.
// Self-edges are legal.
func (g *Graph) AddEdge(from, to Node) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	targets, ok := g.edges[from]
	if !ok {
		targets = make(map[Node]struct{})
		g.edges[from] = targets
	}
	targets[to] = struct{}{}
}

// Exists reports whether the node is a member of the graph's key set.
func (g *Graph) Exists(n Node) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	_, ok := g.edges[n]
	return ok
}

// Outgoing returns the distinct targets reachable by one edge from n, in
// the graph's stable iteration order (lexical by module source). A node
// that is not a member of the graph returns nil.
func (g *Graph) Outgoing(n Node) []Node {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	targets, ok := g.edges[n]
	if !ok {
		return nil
	}

	nodes := make([]Node, 0, len(targets))
	for t := range targets {
		nodes = append(nodes, t)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].less(nodes[j]) })
	return nodes
}

// Nodes returns every member node in stable order. Edge-only targets that
// were never added as members are not included.
func (g *Graph) Nodes() []Node {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	nodes := make([]Node, 0, len(g.edges))
	for n := range g.edges {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].less(nodes[j]) })
	return nodes
}

// Len returns the number of member nodes, the root included.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.edges)
}
