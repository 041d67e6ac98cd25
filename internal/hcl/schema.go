package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a catalog file.
type fileRoot struct {
	Options    []*nodeBlock `hcl:"option,block"`
	Properties []*nodeBlock `hcl:"property,block"`
}

// nodeBlock is the HCL shape shared by `option` and `property` blocks.
type nodeBlock struct {
	ID            string         `hcl:"id,label"`
	Category      string         `hcl:"category,optional"`
	Description   string         `hcl:"description,optional"`
	ActivatedBy   hcl.Expression `hcl:"activated_by,optional"`
	DeactivatedBy hcl.Expression `hcl:"deactivated_by,optional"`
	Reveals       hcl.Expression `hcl:"reveals,optional"`
}
