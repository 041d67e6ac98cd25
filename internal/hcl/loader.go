package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
	"github.com/specialistvlad/optiongraph/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under the given paths and merges their blocks
// into one model, in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		part, err := l.parse(ctx, parser, file, src)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	logger.Debug("HCL loading complete.", "options", len(model.Options), "properties", len(model.Properties))
	return model, nil
}

// LoadSource parses a single in-memory HCL document. filename is used in
// diagnostics only.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	return l.parse(ctx, hclparse.NewParser(), filename, src)
}

func (l *Loader) parse(ctx context.Context, parser *hclparse.Parser, filename string, src []byte) (*config.Model, error) {
	ctx = ctxlog.With(ctx, "file", filename)
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.NewModel()
	for _, b := range root.Options {
		def, err := translateNode(ctx, b, "primary")
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filename, err)
		}
		model.Options = append(model.Options, def)
	}
	for _, b := range root.Properties {
		def, err := translateNode(ctx, b, "property")
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filename, err)
		}
		model.Properties = append(model.Properties, def)
	}
	return model, nil
}
