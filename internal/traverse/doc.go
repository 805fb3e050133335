// Package traverse is the read-only walk layer over a frozen bundle graph.
// It performs a pre-order, depth-first, visited-once traversal from the
// synthetic root and yields the display labels of every reachable node in
// first-visit order.
package traverse
