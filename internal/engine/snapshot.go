package engine

import (
	"encoding/json"

	"github.com/specialistvlad/optiongraph/internal/catalog"
)

// Link is a drawn edge from an enabled node to a node it reveals.
type Link struct {
	Source *catalog.Node
	Target *catalog.Node
}

// MarshalJSON writes the link as a pair of ids.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}{l.Source.ID, l.Target.ID})
}

// State is the resolved state of one node.
type State struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Category    catalog.Category `json:"category"`
	Enabled     bool             `json:"enabled"`
	Disabled    bool             `json:"disabled"`
	Visible     bool             `json:"visible"`
	UserEnabled bool             `json:"user_enabled"`
}

// Snapshot is the outcome of a full resolution pass.
type Snapshot struct {
	States []State `json:"nodes"`
	Links  []Link  `json:"links"`

	// Selected lists choices the user picked or that are enabled.
	Selected []string `json:"selected"`
	// Requirements and Suggestions list the requirement and property nodes
	// currently implied by the selection.
	Requirements []string `json:"requirements"`
	Suggestions  []string `json:"suggestions"`

	// Consistent is false when the selection admits no assignment that
	// satisfies every deactivation rule and deactivation was judged on raw
	// activity instead.
	Consistent bool `json:"consistent"`
}

// State returns the resolved state of the node with the given id.
func (s *Snapshot) State(id string) (State, bool) {
	for _, st := range s.States {
		if st.ID == id {
			return st, true
		}
	}
	return State{}, false
}

// Resolve evaluates every node, the links and the summary lists in one
// pass.
func (r *Resolver) Resolve() (*Snapshot, error) {
	p, err := r.pass()
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		States:       make([]State, 0, r.c.Len()),
		Links:        p.links(),
		Selected:     []string{},
		Requirements: []string{},
		Suggestions:  []string{},
		Consistent:   p.consistent,
	}

	for _, n := range r.c.All() {
		st := State{
			ID:          n.ID,
			Label:       n.Label(),
			Category:    n.Category,
			Enabled:     p.enabled[n.ID],
			Disabled:    p.disabled[n.ID],
			Visible:     p.visible(n),
			UserEnabled: n.UserEnabled,
		}
		s.States = append(s.States, st)

		switch {
		case n.Category.IsChoice():
			if st.UserEnabled || st.Enabled {
				s.Selected = append(s.Selected, n.ID)
			}
		case st.Visible || (st.Enabled && !st.UserEnabled):
			if n.Category == catalog.Requirement {
				s.Requirements = append(s.Requirements, n.ID)
			} else {
				s.Suggestions = append(s.Suggestions, n.ID)
			}
		}
	}
	return s, nil
}
