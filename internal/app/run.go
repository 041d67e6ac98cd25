package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/optiongraph/internal/ctxlog"
)

// Run replays the configured toggles, prints the report and, when a port is
// configured, serves the engine until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	for _, id := range a.config.Toggles {
		err := a.Toggle(id)
		switch {
		case errors.Is(err, ErrNodeDisabled):
			a.logger.Warn("Toggle skipped, node is disabled.", "id", id)
		case err != nil:
			return fmt.Errorf("failed to apply toggle: %w", err)
		}
	}

	snap, err := a.Snapshot()
	if err != nil {
		return fmt.Errorf("resolution failed: %w", err)
	}
	if !snap.Consistent {
		a.logger.Warn("Selection has no consistent resolution, deactivation judged on raw activity.")
	}
	a.logger.Info("Catalog resolved.", "nodes", len(snap.States), "links", len(snap.Links), "selected", len(snap.Selected))

	if err := a.render(snap); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.config.Port > 0 {
		a.startServer(ctx, a.config.Port)
		<-ctx.Done()
		if err := a.closeServer(); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
