package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/optiongraph/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) *engine.Snapshot {
	t.Helper()
	var raw struct {
		Selected     []string `json:"selected"`
		Requirements []string `json:"requirements"`
		Suggestions  []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return &engine.Snapshot{Selected: raw.Selected, Requirements: raw.Requirements, Suggestions: raw.Suggestions}
}

func TestServer(t *testing.T) {
	a, _, _ := SetupAppTest(t, Config{})
	h := a.Handler()

	do := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK\n", rec.Body.String())
	})

	t.Run("initial state", func(t *testing.T) {
		rec := do(http.MethodGet, "/state")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Empty(t, decodeSnapshot(t, rec).Selected)
	})

	t.Run("toggle", func(t *testing.T) {
		rec := do(http.MethodPost, "/toggle?id=choice")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"precise", "choice", "bounded"}, decodeSnapshot(t, rec).Selected)

		rec = do(http.MethodGet, "/state")
		assert.Equal(t, []string{"precise", "choice", "bounded"}, decodeSnapshot(t, rec).Selected)
	})

	t.Run("toggle disabled node", func(t *testing.T) {
		rec := do(http.MethodPost, "/toggle?id=imprecise")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "node is disabled")
	})

	t.Run("toggle unknown node", func(t *testing.T) {
		rec := do(http.MethodPost, "/toggle?id=ghost")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("toggle without id", func(t *testing.T) {
		rec := do(http.MethodPost, "/toggle")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := do(http.MethodGet, "/toggle?id=choice")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("toggle back off", func(t *testing.T) {
		rec := do(http.MethodPost, "/toggle?id=choice")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeSnapshot(t, rec).Selected)
	})
}
