package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	groupsType = cty.List(cty.List(cty.String))
	idsType    = cty.List(cty.String)
)

// translateNode converts an HCL block into the agnostic model. Blocks
// without a category get defaultCategory.
func translateNode(ctx context.Context, b *nodeBlock, defaultCategory string) (*config.NodeDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("node_id", b.ID)
	logger.Debug("Translating HCL node block.")

	def := &config.NodeDefinition{
		ID:          b.ID,
		Category:    b.Category,
		Description: b.Description,
	}
	if def.Category == "" {
		def.Category = defaultCategory
	}

	var err error
	if def.ActivatedBy, err = decodeGroups(ctx, b.ActivatedBy, "activated_by"); err != nil {
		return nil, fmt.Errorf("node %q: %w", b.ID, err)
	}
	if def.DeactivatedBy, err = decodeGroups(ctx, b.DeactivatedBy, "deactivated_by"); err != nil {
		return nil, fmt.Errorf("node %q: %w", b.ID, err)
	}
	if def.Reveals, err = decodeIDs(ctx, b.Reveals, "reveals"); err != nil {
		return nil, fmt.Errorf("node %q: %w", b.ID, err)
	}
	return def, nil
}

func decodeGroups(ctx context.Context, expr hcl.Expression, attr string) ([][]string, error) {
	var out [][]string
	if err := decodeExpr(ctx, expr, attr, groupsType, &out); err != nil {
		return nil, fmt.Errorf("%s must be a list of id groups such as [[\"a\", \"b\"], [\"c\"]]: %w", attr, err)
	}
	return out, nil
}

func decodeIDs(ctx context.Context, expr hcl.Expression, attr string) ([]string, error) {
	var out []string
	if err := decodeExpr(ctx, expr, attr, idsType, &out); err != nil {
		return nil, fmt.Errorf("%s must be a list of ids: %w", attr, err)
	}
	return out, nil
}

// decodeExpr evaluates expr, converts it to want and decodes it into target.
// Omitted attributes and null values leave target untouched.
func decodeExpr(ctx context.Context, expr hcl.Expression, attr string, want cty.Type, target any) error {
	if !isExprDefined(ctx, expr, attr) {
		return nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), want.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional expression fields with zero-width
// placeholders, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attr string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked HCL attribute presence.", "attribute", attr, "hcl_range", r.String(), "is_defined", defined)
	return defined
}
