package engine

import (
	"sort"
	"strings"

	"github.com/specialistvlad/optiongraph/internal/catalog"
)

// DefaultSearchLimit bounds how many candidate sets of disabled nodes a
// resolution pass examines before it falls back.
const DefaultSearchLimit = 1 << 14

type nodeSet map[string]bool

// pass is one resolution of every node in a catalog. It is discarded once
// the query that built it has been answered.
type pass struct {
	c         *catalog.Catalog
	revealers map[string][]*catalog.Node

	enabled    nodeSet
	disabled   nodeSet
	consistent bool
}

func newPass(c *catalog.Catalog, limit int) *pass {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	p := &pass{c: c, revealers: make(map[string][]*catalog.Node)}
	for _, n := range c.All() {
		for _, id := range n.Reveals {
			p.revealers[id] = append(p.revealers[id], n)
		}
	}

	s := &search{p: p, limit: limit, seen: make(map[string]bool)}
	if on, off, ok := s.solve(nodeSet{}); ok {
		p.enabled, p.disabled, p.consistent = on, off, true
		return p
	}

	// No self-consistent assignment: judge deactivation on raw activity.
	raw := p.active(nil)
	p.disabled = p.deactivated(raw)
	p.enabled = make(nodeSet, len(raw))
	for id := range raw {
		if !p.disabled[id] {
			p.enabled[id] = true
		}
	}
	return p
}

// active returns the least set of nodes switched on by user selection,
// activation groups and requirement propagation, with blocked nodes held
// off. Activation cycles with no outside support stay off.
func (p *pass) active(blocked nodeSet) nodeSet {
	on := make(nodeSet)
	for changed := true; changed; {
		changed = false
		for _, n := range p.c.All() {
			if on[n.ID] || blocked[n.ID] || !p.supported(n, on) {
				continue
			}
			on[n.ID] = true
			changed = true
		}
	}
	return on
}

func (p *pass) supported(n *catalog.Node, on nodeSet) bool {
	if n.UserEnabled {
		return true
	}
	for _, g := range n.ActivatedBy {
		if satisfied(g, on) {
			return true
		}
	}
	if n.Category == catalog.Requirement {
		for _, r := range p.revealers[n.ID] {
			if r != n && on[r.ID] {
				return true
			}
		}
	}
	return false
}

func (p *pass) deactivated(on nodeSet) nodeSet {
	off := make(nodeSet)
	for _, n := range p.c.All() {
		for _, g := range n.DeactivatedBy {
			if satisfied(g, on) {
				off[n.ID] = true
				break
			}
		}
	}
	return off
}

// satisfied holds when every id is in on. Unknown ids are never in on, and
// an empty group holds vacuously.
func satisfied(g catalog.Group, on nodeSet) bool {
	for _, id := range g {
		if !on[id] {
			return false
		}
	}
	return true
}

func (p *pass) visible(n *catalog.Node) bool {
	if n.Category.IsChoice() {
		return true
	}
	for _, r := range p.revealers[n.ID] {
		if p.enabled[r.ID] {
			return true
		}
	}
	return false
}

func (p *pass) links() []Link {
	links := []Link{}
	for _, n := range p.c.All() {
		if !p.enabled[n.ID] {
			continue
		}
		for _, id := range n.Reveals {
			if target, ok := p.c.Node(id); ok {
				links = append(links, Link{Source: n, Target: target})
			}
		}
	}
	return links
}

// search looks for a set of disabled nodes that reproduces itself: once it
// is held off, the remaining active nodes deactivate exactly that set.
type search struct {
	p     *pass
	limit int
	seen  map[string]bool
}

// solve blocks conflicting nodes, active yet deactivated, one at a time.
// The last declared conflict is tried first, so earlier declarations keep
// precedence when a pair of user choices exclude each other.
func (s *search) solve(blocked nodeSet) (nodeSet, nodeSet, bool) {
	key := setKey(blocked)
	if s.seen[key] || len(s.seen) >= s.limit {
		return nil, nil, false
	}
	s.seen[key] = true

	on := s.p.active(blocked)
	off := s.p.deactivated(on)
	if sameSet(s.p.active(off), on) {
		return on, off, true
	}

	all := s.p.c.All()
	for i := len(all) - 1; i >= 0; i-- {
		id := all[i].ID
		if !on[id] || !off[id] {
			continue
		}
		next := make(nodeSet, len(blocked)+1)
		for b := range blocked {
			next[b] = true
		}
		next[id] = true
		if on, off, ok := s.solve(next); ok {
			return on, off, true
		}
	}
	return nil, nil, false
}

func setKey(s nodeSet) string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, "\x00")
}

func sameSet(a, b nodeSet) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
