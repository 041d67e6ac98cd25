package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/optiongraph/internal/dag"
	"github.com/specialistvlad/optiongraph/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newApp(t *testing.T, cfg Config) (*App, *SafeBuffer, error) {
	t.Helper()
	checked, err := NewConfig(cfg)
	require.NoError(t, err)
	logs := &SafeBuffer{}
	a, err := NewApp(&SafeBuffer{}, logs, checked)
	return a, logs, err
}

func TestNewApp_Builtin(t *testing.T) {
	a, _, _ := SetupAppTest(t, Config{})
	assert.Equal(t, 47, a.Catalog().Len())
}

func TestNewApp_Formats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "options.hcl", `
option "a" {
  reveals = ["x"]
}
`)
	writeFile(t, dir, "properties.yaml", `
properties:
  - id: x
    category: requirement
`)

	t.Run("directory merges hcl and yaml", func(t *testing.T) {
		a, _, _ := SetupAppTest(t, Config{CatalogPath: dir})
		_, ok := a.Catalog().Node("a")
		assert.True(t, ok)
		_, ok = a.Catalog().Node("x")
		assert.True(t, ok)
	})

	t.Run("single yaml file", func(t *testing.T) {
		a, _, _ := SetupAppTest(t, Config{CatalogPath: filepath.Join(dir, "properties.yaml")})
		assert.Equal(t, 1, a.Catalog().Len())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "catalog.json", "{}")
		_, _, err := newApp(t, Config{CatalogPath: path})
		assert.ErrorContains(t, err, "unsupported catalog file")
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, err := newApp(t, Config{CatalogPath: filepath.Join(dir, "nope.hcl")})
		assert.ErrorContains(t, err, "error accessing catalog path")
	})

	t.Run("empty directory", func(t *testing.T) {
		_, _, err := newApp(t, Config{CatalogPath: t.TempDir()})
		assert.ErrorContains(t, err, "no catalog definitions")
	})
}

func TestNewApp_WarnsOnDanglingReferences(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.hcl", `
option "a" {
  activated_by = [["ghost"]]
}
`)
	_, logs, err := newApp(t, Config{CatalogPath: path})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "a.activated_by -> ghost")
}

func TestNewApp_Strict(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.hcl", `
option "a" {
  activated_by = [["b"]]
}
option "b" {
  activated_by = [["a"]]
}
`)

	_, _, err := newApp(t, Config{CatalogPath: path})
	require.NoError(t, err, "cycles are only rejected in strict mode")

	_, _, err = newApp(t, Config{CatalogPath: path, Strict: true})
	assert.ErrorIs(t, err, dag.ErrCycle)
}

func TestRun_JSONReport(t *testing.T) {
	a, out, logs := SetupAppTest(t, Config{
		Output:  "json",
		Toggles: []string{"choice", "imprecise"},
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, logs.String(), "Toggle skipped, node is disabled.")

	var report struct {
		Selected     []string `json:"selected"`
		Requirements []string `json:"requirements"`
		Nodes        []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
			Disabled bool   `json:"disabled"`
		} `json:"nodes"`
		Links []struct {
			Source string `json:"source"`
			Target string `json:"target"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.String()), &report))
	assert.Equal(t, []string{"precise", "choice", "bounded"}, report.Selected)
	assert.Contains(t, report.Requirements, "show_number_in_feedback")
	assert.Len(t, report.Nodes, 47)
	assert.NotEmpty(t, report.Links)
}

func TestRun_TextReport(t *testing.T) {
	a, out, _ := SetupAppTest(t, Config{Toggles: []string{"counting"}})
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Selected")
	assert.Contains(t, text, "  - counting\n")
	assert.Contains(t, text, "  - increment control\n")
	assert.Regexp(t, `\* counting\s+enabled \(user\)`, text)
	assert.Regexp(t, `x choice\s+disabled`, text)
	assert.Contains(t, text, "5 links")
}

func TestRun_UnknownToggle(t *testing.T) {
	a, _, _ := SetupAppTest(t, Config{Toggles: []string{"ghost"}})
	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestRun_InconsistentSelection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.hcl", `
option "a" {
  deactivated_by = [["a"]]
}
`)

	t.Run("falls back with a warning", func(t *testing.T) {
		a, out, logs := SetupAppTest(t, Config{CatalogPath: path, Toggles: []string{"a"}, Output: "json"})
		require.NoError(t, a.Run(context.Background()))
		assert.Contains(t, logs.String(), "Selection has no consistent resolution")
		assert.Contains(t, out.String(), `"consistent": false`)
	})

	t.Run("strict mode fails", func(t *testing.T) {
		checked, err := NewConfig(Config{CatalogPath: path, Toggles: []string{"a"}, Strict: true})
		require.NoError(t, err)
		a, err := NewApp(&SafeBuffer{}, &SafeBuffer{}, checked)
		require.NoError(t, err, "deactivation loops are not structural cycles")

		err = a.Run(context.Background())
		assert.ErrorIs(t, err, engine.ErrNoConsistentState)
	})
}

func TestNewApp_WarnsOnEmptyGroups(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.hcl", `
option "a" {
  activated_by = [[]]
}
`)
	a, _, logs := SetupAppTest(t, Config{CatalogPath: path})
	assert.Contains(t, logs.String(), "Empty relation group always holds.")
	assert.Contains(t, logs.String(), "a.activated_by[0]")

	snap, err := a.Snapshot()
	require.NoError(t, err)
	st, _ := snap.State("a")
	assert.True(t, st.Enabled)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	a, _, logs := SetupAppTest(t, Config{Port: 18089})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, logs.String(), "Shutting down server...")
}
