package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/specialistvlad/optiongraph/internal/catalog"
	"github.com/specialistvlad/optiongraph/internal/ctxlog"
	"github.com/specialistvlad/optiongraph/internal/dag"
	"github.com/specialistvlad/optiongraph/internal/engine"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	// mu serialises every engine call; the engine itself is single-threaded.
	mu       sync.Mutex
	catalog  *catalog.Catalog
	resolver *engine.Resolver

	httpServer *http.Server
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs to logW. It loads and validates the catalog named by cfg.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("Catalog loaded into unified model.", "options", len(model.Options), "properties", len(model.Properties))

	c, err := catalog.New(model)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	for _, ref := range c.DanglingReferences() {
		logger.Warn("Relation points at an unknown node and will never fire.", "reference", ref.String())
	}

	for _, ref := range c.EmptyGroups() {
		logger.Warn("Empty relation group always holds.", "group", ref)
	}

	opts := []engine.ResolverOption{engine.WithSearchLimit(cfg.SearchLimit)}
	if cfg.Strict {
		if err := dag.FromCatalog(ctx, c).DetectCycles(); err != nil {
			return nil, fmt.Errorf("strict catalog check failed: %w", err)
		}
		opts = append(opts, engine.RequireConsistent())
		logger.Debug("Strict catalog check passed.")
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		catalog:  c,
		resolver: engine.NewResolver(c, opts...),
	}, nil
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}
