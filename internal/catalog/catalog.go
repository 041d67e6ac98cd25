package catalog

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/optiongraph/internal/config"
)

// ErrDuplicateID is returned when two definitions share an id.
var ErrDuplicateID = errors.New("duplicate node id")

// Catalog is the immutable node set. Types holds the choice nodes and
// Properties holds property and requirement nodes; both share one id space.
type Catalog struct {
	types      []*Node
	properties []*Node
	all        []*Node
	byID       map[string]*Node
}

// Option configures catalog construction.
type Option func(*options)

type options struct {
	width, height float64
}

// WithViewport seeds every node at the centre of a width x height viewport.
func WithViewport(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// New builds a catalog from a loaded model. Construction is pure and
// deterministic. Unknown ids inside relations are accepted here; see
// DanglingReferences.
func New(model *config.Model, opts ...Option) (*Catalog, error) {
	if model == nil {
		return nil, errors.New("catalog model is nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	seed := Point{X: o.width * 0.5, Y: o.height * 0.5}

	c := &Catalog{byID: make(map[string]*Node, model.Len())}

	for _, def := range model.Options {
		n, err := c.add(def, seed)
		if err != nil {
			return nil, err
		}
		if !n.Category.IsChoice() {
			return nil, fmt.Errorf("option %q: category %s is not a choice", n.ID, n.Category)
		}
		c.types = append(c.types, n)
	}
	for _, def := range model.Properties {
		n, err := c.add(def, seed)
		if err != nil {
			return nil, err
		}
		if n.Category.IsChoice() {
			return nil, fmt.Errorf("property %q: category %s is a choice", n.ID, n.Category)
		}
		c.properties = append(c.properties, n)
	}

	c.all = make([]*Node, 0, len(c.types)+len(c.properties))
	c.all = append(c.all, c.types...)
	c.all = append(c.all, c.properties...)
	return c, nil
}

func (c *Catalog) add(def *config.NodeDefinition, seed Point) (*Node, error) {
	if def == nil {
		return nil, errors.New("nil node definition")
	}
	if def.ID == "" {
		return nil, errors.New("node definition without id")
	}
	if _, exists := c.byID[def.ID]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateID, def.ID)
	}
	category, err := ParseCategory(def.Category)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", def.ID, err)
	}

	n := &Node{
		ID:            def.ID,
		Category:      category,
		Description:   def.Description,
		ActivatedBy:   toGroups(def.ActivatedBy),
		DeactivatedBy: toGroups(def.DeactivatedBy),
		Reveals:       dedupe(def.Reveals),
		Seed:          seed,
	}
	c.byID[n.ID] = n
	return n, nil
}

// Types returns the choice nodes in declaration order.
func (c *Catalog) Types() []*Node { return c.types }

// Properties returns property and requirement nodes in declaration order.
func (c *Catalog) Properties() []*Node { return c.properties }

// All returns types followed by properties.
func (c *Catalog) All() []*Node { return c.all }

// Node looks up a node by id across both lists.
func (c *Catalog) Node(id string) (*Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// Len returns the number of nodes.
func (c *Catalog) Len() int { return len(c.all) }

// Reference names a relation entry that points at a missing node.
type Reference struct {
	From     string
	Relation string
	To       string
}

func (r Reference) String() string {
	return fmt.Sprintf("%s.%s -> %s", r.From, r.Relation, r.To)
}

// DanglingReferences lists every relation entry whose target id is not in
// the catalog. Such entries never fire at resolution time.
func (c *Catalog) DanglingReferences() []Reference {
	var refs []Reference
	check := func(from, relation, to string) {
		if _, ok := c.byID[to]; !ok {
			refs = append(refs, Reference{From: from, Relation: relation, To: to})
		}
	}
	for _, n := range c.all {
		for _, g := range n.ActivatedBy {
			for _, id := range g {
				check(n.ID, "activated_by", id)
			}
		}
		for _, g := range n.DeactivatedBy {
			for _, id := range g {
				check(n.ID, "deactivated_by", id)
			}
		}
		for _, id := range n.Reveals {
			check(n.ID, "reveals", id)
		}
	}
	return refs
}

// EmptyGroups names every activation or deactivation group with no ids,
// as "node.relation[index]". Such a group always holds.
func (c *Catalog) EmptyGroups() []string {
	var refs []string
	for _, n := range c.all {
		for i, g := range n.ActivatedBy {
			if len(g) == 0 {
				refs = append(refs, fmt.Sprintf("%s.activated_by[%d]", n.ID, i))
			}
		}
		for i, g := range n.DeactivatedBy {
			if len(g) == 0 {
				refs = append(refs, fmt.Sprintf("%s.deactivated_by[%d]", n.ID, i))
			}
		}
	}
	return refs
}

func toGroups(raw [][]string) []Group {
	if len(raw) == 0 {
		return nil
	}
	groups := make([]Group, 0, len(raw))
	for _, ids := range raw {
		groups = append(groups, Group(dedupe(ids)))
	}
	return groups
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
