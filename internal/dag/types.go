package dag

// Graph is a collection of nodes and their dependencies. It is built and
// checked by one goroutine.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order keeps insertion order so traversals are deterministic.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the ids this node depends on (predecessors).
	deps map[string]struct{}
	// dependents holds the ids that depend on this node, in insertion order.
	dependents []string
}
