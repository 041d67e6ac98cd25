package config

// Model is the unified, format-agnostic representation of a decision
// catalog. Options and Properties keep their declaration order.
type Model struct {
	Options    []*NodeDefinition
	Properties []*NodeDefinition
}

// NodeDefinition is the format-agnostic representation of an `option` or
// `property` block.
type NodeDefinition struct {
	ID            string
	Category      string
	Description   string
	ActivatedBy   [][]string
	DeactivatedBy [][]string
	Reveals       []string
}

// NewModel returns an empty model ready for loaders to append into.
func NewModel() *Model {
	return &Model{}
}

// Merge appends the definitions of other to m, preserving order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Options = append(m.Options, other.Options...)
	m.Properties = append(m.Properties, other.Properties...)
}

// Len returns the total number of node definitions.
func (m *Model) Len() int {
	return len(m.Options) + len(m.Properties)
}
