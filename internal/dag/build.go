package dag

import (
	"context"

	"github.com/specialistvlad/optiongraph/internal/catalog"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
)

// FromCatalog builds the activation and requirement-propagation graph of c.
// Relations naming unknown ids are skipped; they never fire at resolution
// time.
func FromCatalog(ctx context.Context, c *catalog.Catalog) *Graph {
	logger := ctxlog.FromContext(ctx)
	g := New()
	for _, n := range c.All() {
		g.AddNode(n.ID)
	}

	edges := 0
	link := func(from, to string) {
		if _, ok := c.Node(from); !ok {
			return
		}
		// Both ends are known nodes here, so AddEdge cannot fail.
		_ = g.AddEdge(from, to)
		edges++
	}

	for _, n := range c.All() {
		for _, group := range n.ActivatedBy {
			for _, member := range group {
				link(member, n.ID)
			}
		}
		for _, id := range n.Reveals {
			target, ok := c.Node(id)
			if !ok || target.Category != catalog.Requirement || target == n {
				continue
			}
			link(n.ID, id)
		}
	}

	logger.Debug("Dependency graph built from catalog.", "nodes", g.Len(), "edges", edges)
	return g
}
