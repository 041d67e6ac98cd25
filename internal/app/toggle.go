package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/optiongraph/internal/engine"
)

var (
	// ErrUnknownNode is returned when a toggle names an id not in the catalog.
	ErrUnknownNode = errors.New("unknown node")
	// ErrNodeDisabled is returned when a toggle targets a disabled node.
	ErrNodeDisabled = errors.New("node is disabled")
)

// Toggle flips the user selection of the node with the given id.
func (a *App) Toggle(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, ok := a.catalog.Node(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	flipped, err := a.resolver.Toggle(n)
	if err != nil {
		return err
	}
	if !flipped {
		return fmt.Errorf("%w: %q", ErrNodeDisabled, id)
	}
	a.logger.Debug("Node toggled.", "id", id, "user_enabled", n.UserEnabled)
	return nil
}

// Snapshot runs a full resolution pass over the current selection.
func (a *App) Snapshot() (*engine.Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.resolver.Resolve()
}
