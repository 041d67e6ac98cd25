package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, exit, err := Parse(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "", cfg.CatalogPath)
		assert.Empty(t, cfg.Toggles)
		assert.Equal(t, "text", cfg.Output)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Strict)
		assert.Zero(t, cfg.SearchLimit)
		assert.Zero(t, cfg.Port)
	})

	t.Run("all flags", func(t *testing.T) {
		cfg, _, err := Parse([]string{
			"-catalog", "cat.hcl",
			"-toggle", "choice, known,,precise",
			"-output", "JSON",
			"-log-format", "json",
			"-log-level", "DEBUG",
			"-strict",
			"-search-limit", "64",
			"-port", "8080",
		}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "cat.hcl", cfg.CatalogPath)
		assert.Equal(t, []string{"choice", "known", "precise"}, cfg.Toggles)
		assert.Equal(t, "json", cfg.Output)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Strict)
		assert.Equal(t, 64, cfg.SearchLimit)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("path precedence", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-catalog", "long.hcl", "-c", "short.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "long.hcl", cfg.CatalogPath)

		cfg, _, err = Parse([]string{"positional.yaml"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "positional.yaml", cfg.CatalogPath)
	})

	t.Run("help", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse([]string{"-h"}, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"bad log format", []string{"-log-format", "xml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "trace"}, "invalid log-level"},
		{"bad output", []string{"-output", "html"}, "invalid output"},
		{"negative search limit", []string{"-search-limit", "-1"}, "search-limit"},
		{"two paths", []string{"a.hcl", "b.hcl"}, "at most one catalog path"},
		{"flag and positional path", []string{"-c", "short.hcl", "positional.hcl"}, "at most one catalog path"},
		{"long flag and positional path", []string{"-catalog", "long.hcl", "positional.hcl"}, "at most one catalog path"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
