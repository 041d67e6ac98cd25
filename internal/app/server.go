package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/specialistvlad/optiongraph/internal/ctxlog"
)

// Handler returns the HTTP surface of the app.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /state", a.stateHandler)
	mux.HandleFunc("POST /toggle", a.toggleHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) stateHandler(w http.ResponseWriter, r *http.Request) {
	a.writeSnapshot(w)
}

func (a *App) toggleHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id query parameter", http.StatusBadRequest)
		return
	}

	err := a.Toggle(id)
	switch {
	case errors.Is(err, ErrUnknownNode):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, ErrNodeDisabled):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		a.logger.Error("Toggle failed.", "id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.writeSnapshot(w)
}

func (a *App) writeSnapshot(w http.ResponseWriter) {
	snap, err := a.Snapshot()
	if err != nil {
		a.logger.Error("Resolution failed.", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		a.logger.Error("Failed to write snapshot.", "error", err)
	}
}

// startServer runs the HTTP server in the background.
func (a *App) startServer(ctx context.Context, port int) {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("🧭 Server starting", "address", fmt.Sprintf("http://localhost%s/state", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeServer() error {
	if a.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Server shut down gracefully.")
	return nil
}
