package catalog

import "strings"

// Group is a set of node ids that must all be enabled for the group to be
// satisfied.
type Group []string

// Point is a 2-D layout seed.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single entry of the catalog.
type Node struct {
	ID            string
	Category      Category
	Description   string
	ActivatedBy   []Group
	DeactivatedBy []Group
	Reveals       []string
	Seed          Point

	// UserEnabled is owned by the caller and changed only through
	// engine.Toggle.
	UserEnabled bool
}

// RevealsID reports whether id is in the node's reveals set.
func (n *Node) RevealsID(id string) bool {
	for _, r := range n.Reveals {
		if r == id {
			return true
		}
	}
	return false
}

// Label is the human-readable name used in reports.
func (n *Node) Label() string {
	if n.Description != "" {
		return n.Description
	}
	return strings.ReplaceAll(n.ID, "_", " ")
}
