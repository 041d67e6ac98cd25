// Package builtin embeds the default decision catalog shipped with the
// binary.
package builtin

import (
	"context"
	_ "embed"

	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/specialistvlad/optiongraph/internal/hcl"
)

// Filename is the name used for the embedded catalog in diagnostics.
const Filename = "builtin/catalog.hcl"

//go:embed catalog.hcl
var source []byte

// Model parses the embedded catalog.
func Model(ctx context.Context) (*config.Model, error) {
	return hcl.NewLoader().LoadSource(ctx, Filename, source)
}
