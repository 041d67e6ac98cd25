package engine

import (
	"testing"

	"github.com/specialistvlad/optiongraph/internal/catalog"
	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// def is a compact node definition for test catalogs.
type def struct {
	id          string
	category    string
	activated   [][]string
	deactivated [][]string
	reveals     []string
}

func newCatalog(t *testing.T, defs ...def) *catalog.Catalog {
	t.Helper()
	model := config.NewModel()
	for _, d := range defs {
		nd := &config.NodeDefinition{
			ID:            d.id,
			Category:      d.category,
			ActivatedBy:   d.activated,
			DeactivatedBy: d.deactivated,
			Reveals:       d.reveals,
		}
		switch d.category {
		case "primary", "secondary":
			model.Options = append(model.Options, nd)
		default:
			model.Properties = append(model.Properties, nd)
		}
	}
	c, err := catalog.New(model)
	require.NoError(t, err)
	return c
}

func node(t *testing.T, c *catalog.Catalog, id string) *catalog.Node {
	t.Helper()
	n, ok := c.Node(id)
	require.True(t, ok, "node %q not in catalog", id)
	return n
}

func enable(t *testing.T, c *catalog.Catalog, ids ...string) {
	t.Helper()
	for _, id := range ids {
		node(t, c, id).UserEnabled = true
	}
}

// assertConsistent checks every node against the rule definitions using
// the public predicates only.
func assertConsistent(t *testing.T, c *catalog.Catalog) {
	t.Helper()
	for _, n := range c.All() {
		want := false
		for _, g := range n.DeactivatedBy {
			if GroupSatisfied(c, g) {
				want = true
				break
			}
		}
		assert.Equal(t, want, IsDisabled(c, n), "%s disabled", n.ID)
		if IsEnabled(c, n) {
			assert.False(t, IsDisabled(c, n), "%s enabled and disabled", n.ID)
		}
	}
}
