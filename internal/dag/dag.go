package dag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle is wrapped by DetectCycles when the graph is not acyclic.
var ErrCycle = errors.New("cycle detected")

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:   id,
		deps: make(map[string]struct{}),
	}
	g.order = append(g.order, id)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node,
// meaning `toID` depends on `fromID`. Self edges are allowed and form a
// cycle of length one. Adding an existing edge again is a no-op.
func (g *Graph) AddEdge(fromID, toID string) error {
	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	if _, exists := toNode.deps[fromID]; exists {
		return nil
	}
	toNode.deps[fromID] = struct{}{}
	fromNode.dependents = append(fromNode.dependents, toID)
	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// DetectCycles checks the graph for cycles. The returned error wraps
// ErrCycle and spells out the first cycle found, e.g. "a -> b -> a".
// Traversal follows insertion order, so the result is deterministic.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search. permanent holds nodes known not to lie on a
	// cycle; the path stack holds nodes of the current traversal.
	permanent := make(map[string]bool)
	onPath := make(map[string]int)
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		if permanent[id] {
			return nil
		}
		if start, ok := onPath[id]; ok {
			cycle := append(append([]string(nil), path[start:]...), id)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
		}

		onPath[id] = len(path)
		path = append(path, id)

		for _, dependent := range g.nodes[id].dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		delete(onPath, id)
		permanent[id] = true
		return nil
	}

	for _, id := range g.order {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
