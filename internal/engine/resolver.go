package engine

import (
	"errors"

	"github.com/specialistvlad/optiongraph/internal/catalog"
)

// ErrNoConsistentState is returned by a Resolver built with
// RequireConsistent when no assignment satisfies every deactivation rule,
// for example a node that deactivates itself.
var ErrNoConsistentState = errors.New("catalog selection has no consistent resolution")

// Resolver runs resolution passes over one catalog. The free functions use
// a Resolver with default settings.
type Resolver struct {
	c       *catalog.Catalog
	limit   int
	require bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSearchLimit caps the candidate sets of disabled nodes examined per
// pass. Values <= 0 select DefaultSearchLimit.
func WithSearchLimit(limit int) ResolverOption {
	return func(r *Resolver) {
		if limit < 0 {
			limit = 0
		}
		r.limit = limit
	}
}

// RequireConsistent makes every query fail with ErrNoConsistentState
// instead of falling back to raw-activity deactivation.
func RequireConsistent() ResolverOption {
	return func(r *Resolver) {
		r.require = true
	}
}

// NewResolver returns a resolver over c.
func NewResolver(c *catalog.Catalog, opts ...ResolverOption) *Resolver {
	r := &Resolver{c: c}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) pass() (*pass, error) {
	p := newPass(r.c, r.limit)
	if r.require && !p.consistent {
		return nil, ErrNoConsistentState
	}
	return p, nil
}

// GroupSatisfied reports whether every node named in ids is enabled.
func (r *Resolver) GroupSatisfied(ids catalog.Group) (bool, error) {
	p, err := r.pass()
	if err != nil {
		return false, err
	}
	return satisfied(ids, p.enabled), nil
}

// IsEnabled reports whether n is logically on.
func (r *Resolver) IsEnabled(n *catalog.Node) (bool, error) {
	p, err := r.pass()
	if err != nil {
		return false, err
	}
	return p.enabled[n.ID], nil
}

// IsDisabled reports whether a deactivation group of n is satisfied.
func (r *Resolver) IsDisabled(n *catalog.Node) (bool, error) {
	p, err := r.pass()
	if err != nil {
		return false, err
	}
	return p.disabled[n.ID], nil
}

// IsVisible reports whether n should be shown.
func (r *Resolver) IsVisible(n *catalog.Node) (bool, error) {
	p, err := r.pass()
	if err != nil {
		return false, err
	}
	return p.visible(n), nil
}

// CreateLinks lists one link per enabled node and resolvable revealed id.
func (r *Resolver) CreateLinks() ([]Link, error) {
	p, err := r.pass()
	if err != nil {
		return nil, err
	}
	return p.links(), nil
}

// Toggle flips n's UserEnabled flag unless n is disabled.
func (r *Resolver) Toggle(n *catalog.Node) (bool, error) {
	if n == nil {
		return false, nil
	}
	disabled, err := r.IsDisabled(n)
	if err != nil {
		return false, err
	}
	if disabled {
		return false, nil
	}
	n.UserEnabled = !n.UserEnabled
	return true, nil
}
