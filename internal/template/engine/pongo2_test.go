package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	eng, err := NewPongo2("")
	require.NoError(t, err)

	t.Run("substitutes placeholders", func(t *testing.T) {
		out, err := eng.Expand("rules.tmpl", []byte("service {{name}} threshold {{limit}}"), map[string]any{
			"name":  "front",
			"limit": 5,
		})
		require.NoError(t, err)
		assert.Equal(t, "service front threshold 5", string(out))
	})

	t.Run("missing keys expand to empty", func(t *testing.T) {
		out, err := eng.Expand("rules.tmpl", []byte("[{{absent}}]"), map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "[]", string(out))
	})

	t.Run("nested values are reachable", func(t *testing.T) {
		out, err := eng.Expand("rules.tmpl", []byte("{{thresholds.errors}}"), map[string]any{
			"thresholds": map[string]any{"errors": 5},
		})
		require.NoError(t, err)
		assert.Equal(t, "5", string(out))
	})

	t.Run("filters apply", func(t *testing.T) {
		out, err := eng.Expand("rules.tmpl", []byte("{{name|upper}}"), map[string]any{"name": "front"})
		require.NoError(t, err)
		assert.Equal(t, "FRONT", string(out))
	})

	t.Run("syntax error is surfaced", func(t *testing.T) {
		_, err := eng.Expand("rules.tmpl", []byte("{% if %}"), map[string]any{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rules.tmpl")
	})

	t.Run("unreferenceable keys are dropped, not fatal", func(t *testing.T) {
		out, err := eng.Expand("rules.tmpl", []byte("{{name}}"), map[string]any{
			"name":     "front",
			"app-tier": "web",
			"a.b":      "dotted",
		})
		require.NoError(t, err)
		assert.Equal(t, "front", string(out))
	})
}

func TestNewPongo2WithoutBaseDir(t *testing.T) {
	eng, err := NewPongo2("")
	require.NoError(t, err)

	out, err := eng.Expand("rules.tmpl", []byte("{{name}}"), map[string]any{"name": "front"})
	require.NoError(t, err)
	assert.Equal(t, "front", string(out))
}

func TestNewPongo2WithBaseDir(t *testing.T) {
	t.Run("resolves includes against the base directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "header.tmpl"), []byte("== {{name}} =="), 0644))

		eng, err := NewPongo2(dir)
		require.NoError(t, err)

		out, err := eng.Expand("rules.tmpl", []byte(`{% include "header.tmpl" %}done`), map[string]any{"name": "front"})
		require.NoError(t, err)
		assert.Equal(t, "== front ==done", string(out))
	})

	t.Run("missing base directory fails", func(t *testing.T) {
		_, err := NewPongo2(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
	})
}
