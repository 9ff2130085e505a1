package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// writeConfig writes content to a config file in a fresh temp directory
// and returns the directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644)
	require.NoError(t, err, "failed to write config fixture")
	return dir
}

// TestDefault verifies the built-in defaults are themselves valid.
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Validate())

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, model.KindLatLon, kind)

	format, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, model.FormatText, format)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.False(t, cfg.Strict)
}

// TestLoadConfig_JSONC verifies comments and trailing commas are accepted
// and that missing fields keep their defaults.
func TestLoadConfig_JSONC(t *testing.T) {
	dir := writeConfig(t, `{
  // grid references pasted from a spreadsheet
  "input": "grid_ref",
  /* machine readable output */
  "format": "CSV",
  "strict": true,
}`)

	cfg, err := LoadConfig(filepath.Join(dir, FileName))
	require.NoError(t, err)

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, model.KindGridRef, kind)

	format, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, model.FormatCSV, format)

	assert.True(t, cfg.Strict)
	assert.Equal(t, DefaultWorkers, cfg.Workers, "workers should keep its default")
}

// TestLoadConfig_Invalid verifies validation failures carry ExitConfigError.
func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"bad input kind", `{"input": "utm"}`, "input"},
		{"bad format", `{"format": "xml"}`, "format"},
		{"zero workers", `{"workers": 0}`, "workers"},
		{"negative workers", `{"workers": -2}`, "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)
			_, err := LoadConfig(filepath.Join(dir, FileName))
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigError, cliErr.Code)

			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.field, valErr.Field)
		})
	}
}

// TestLoadConfig_Malformed verifies unparseable files are config errors.
func TestLoadConfig_Malformed(t *testing.T) {
	dir := writeConfig(t, `{"input": `)
	_, err := LoadConfig(filepath.Join(dir, FileName))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "failed to parse")
}

// TestLoadConfig_NotFound verifies a missing explicit file is an error.
func TestLoadConfig_NotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigError, cliErr.Code)
}

// TestLoad covers the lookup order: explicit path, working directory file,
// then built-in defaults.
func TestLoad(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		cfg, path, err := Load("", t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file in directory", func(t *testing.T) {
		dir := writeConfig(t, `{"input": "xy"}`)
		cfg, path, err := Load("", dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, FileName), path)
		assert.Equal(t, "xy", cfg.Input)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		dir := writeConfig(t, `{"input": "xy"}`)
		explicit := filepath.Join(t.TempDir(), "other.jsonc")
		require.NoError(t, os.WriteFile(explicit, []byte(`{"input": "gridref"}`), 0644))

		cfg, path, err := Load(explicit, dir)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
		assert.Equal(t, "gridref", cfg.Input)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), "nope.jsonc"), t.TempDir())
		assert.Error(t, err)
	})
}
