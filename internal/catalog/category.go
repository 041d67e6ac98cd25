package catalog

import (
	"fmt"
	"strings"
)

// Category is the closed set of node kinds.
type Category int

const (
	PrimaryChoice Category = iota + 1
	SecondaryChoice
	Property
	Requirement
)

// ParseCategory accepts the catalog spellings of a category. The numeric
// forms "1" and "2" are kept for catalogs written against the first
// version of the tool.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "1":
		return PrimaryChoice, nil
	case "secondary", "2":
		return SecondaryChoice, nil
	case "property":
		return Property, nil
	case "requirement":
		return Requirement, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// IsChoice reports whether the category belongs to the types list.
func (c Category) IsChoice() bool {
	return c == PrimaryChoice || c == SecondaryChoice
}

// Radius is the drawing radius hint for renderers.
func (c Category) Radius() int {
	switch c {
	case PrimaryChoice:
		return 50
	case SecondaryChoice:
		return 40
	case Property:
		return 20
	case Requirement:
		return 30
	}
	return 0
}

func (c Category) String() string {
	switch c {
	case PrimaryChoice:
		return "primary"
	case SecondaryChoice:
		return "secondary"
	case Property:
		return "property"
	case Requirement:
		return "requirement"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalText lets categories appear by name in JSON output.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
