package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/optiongraph/internal/builtin"
	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
	"github.com/specialistvlad/optiongraph/internal/hcl"
	"github.com/specialistvlad/optiongraph/internal/yamlconf"
)

// loaderFor picks a config.Loader by file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconf.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog file %s: expected .hcl, .yaml or .yml", path)
	}
}

// loadModel reads the catalog at path. A directory is scanned for both HCL
// and YAML files; an empty path yields the builtin catalog.
func loadModel(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No catalog path given, using builtin catalog.")
		return builtin.Model(ctx)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing catalog path %s: %w", path, err)
	}

	if !info.IsDir() {
		loader, err := loaderFor(path)
		if err != nil {
			return nil, err
		}
		return loader.Load(ctx, path)
	}

	model := config.NewModel()
	for _, loader := range []config.Loader{hcl.NewLoader(), yamlconf.NewLoader()} {
		part, err := loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}
	if model.Len() == 0 {
		return nil, fmt.Errorf("no catalog definitions found in %s", path)
	}
	return model, nil
}
