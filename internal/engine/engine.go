package engine

import (
	"github.com/specialistvlad/optiongraph/internal/catalog"
)

// GroupSatisfied reports whether every node named in ids is enabled.
// Unknown ids never are; an empty group holds vacuously.
func GroupSatisfied(c *catalog.Catalog, ids catalog.Group) bool {
	ok, _ := NewResolver(c).GroupSatisfied(ids)
	return ok
}

// IsEnabled reports whether n is logically on. A disabled node is never
// enabled.
func IsEnabled(c *catalog.Catalog, n *catalog.Node) bool {
	ok, _ := NewResolver(c).IsEnabled(n)
	return ok
}

// IsDisabled reports whether any deactivation group of n is satisfied.
func IsDisabled(c *catalog.Catalog, n *catalog.Node) bool {
	ok, _ := NewResolver(c).IsDisabled(n)
	return ok
}

// IsVisible reports whether n should be shown at all. Its own UserEnabled
// flag plays no part.
func IsVisible(c *catalog.Catalog, n *catalog.Node) bool {
	ok, _ := NewResolver(c).IsVisible(n)
	return ok
}

// CreateLinks projects the current enabled state onto the reveals relation:
// one link per enabled node and revealed id that resolves, in catalog order.
func CreateLinks(c *catalog.Catalog) []Link {
	links, _ := NewResolver(c).CreateLinks()
	return links
}

// Toggle flips n's UserEnabled flag. It refuses disabled nodes and reports
// whether the flag changed.
func Toggle(c *catalog.Catalog, n *catalog.Node) bool {
	changed, _ := NewResolver(c).Toggle(n)
	return changed
}

// Resolve runs a full resolution pass.
func Resolve(c *catalog.Catalog) *Snapshot {
	s, _ := NewResolver(c).Resolve()
	return s
}
