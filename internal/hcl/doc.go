// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for file discovery, parsing, and translating `option` and
// `property` blocks into the format-agnostic catalog model.
//
// A catalog file looks like:
//
//	option "precise" {
//	  category       = "primary"
//	  activated_by   = [["choice"]]
//	  deactivated_by = [["imprecise"]]
//	  reveals        = ["number_is_thing_of_interest"]
//	}
//
//	property "number_is_thing_of_interest" {
//	  category = "requirement"
//	}
//
// Relation attributes are HCL expressions evaluated without variables or
// functions and converted through cty.
package hcl
