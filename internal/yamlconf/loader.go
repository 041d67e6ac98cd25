// Package yamlconf provides a YAML implementation of config.Loader for
// catalogs kept alongside other YAML configuration.
//
//	options:
//	  - id: precise
//	    category: primary
//	    activated_by: [[choice]]
//	    deactivated_by: [[imprecise]]
//	    reveals: [number_is_thing_of_interest]
//	properties:
//	  - id: number_is_thing_of_interest
//	    category: requirement
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/optiongraph/internal/config"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
	"github.com/specialistvlad/optiongraph/internal/fsutil"
	"gopkg.in/yaml.v3"
)

type document struct {
	Options    []nodeEntry `yaml:"options"`
	Properties []nodeEntry `yaml:"properties"`
}

type nodeEntry struct {
	ID            string     `yaml:"id"`
	Category      string     `yaml:"category"`
	Description   string     `yaml:"description,omitempty"`
	ActivatedBy   [][]string `yaml:"activated_by,omitempty"`
	DeactivatedBy [][]string `yaml:"deactivated_by,omitempty"`
	Reveals       []string   `yaml:"reveals,omitempty"`
}

// Loader reads catalogs from .yaml and .yml files.
type Loader struct{}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under the given paths and merges them in file
// order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}

	model := config.NewModel()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		part, err := l.LoadSource(ctx, file, src)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "options", len(model.Options), "properties", len(model.Properties))
	return model, nil
}

// LoadSource decodes every document in a YAML stream and merges them in
// stream order. Unknown keys are rejected.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	model := config.NewModel()
	docs := 0
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s (document %d): %w", filename, docs+1, err)
		}
		docs++
		for _, e := range doc.Options {
			model.Options = append(model.Options, e.definition("primary"))
		}
		for _, e := range doc.Properties {
			model.Properties = append(model.Properties, e.definition("property"))
		}
	}
	ctxlog.FromContext(ctx).Debug("Decoded YAML catalog.", "file", filename, "documents", docs, "nodes", model.Len())
	return model, nil
}

func (e nodeEntry) definition(defaultCategory string) *config.NodeDefinition {
	category := e.Category
	if category == "" {
		category = defaultCategory
	}
	return &config.NodeDefinition{
		ID:            e.ID,
		Category:      category,
		Description:   e.Description,
		ActivatedBy:   e.ActivatedBy,
		DeactivatedBy: e.DeactivatedBy,
		Reveals:       e.Reveals,
	}
}
