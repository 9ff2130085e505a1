package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// FileName is the configuration file looked up in the working directory
// when no explicit path is given.
const FileName = ".irishgrid.jsonc"

// DefaultWorkers is the number of rows converted in parallel when neither
// the file nor a flag says otherwise.
const DefaultWorkers = 8

// Config holds defaults for the convert and nearest commands.
//
// Example file:
//
//	{
//	  // rows are typed as lat/lon pairs
//	  "input": "latlon",
//	  "format": "csv",
//	  "workers": 4,
//	  "strict": false,
//	}
type Config struct {
	// Input is the coordinate kind of input rows (gridref, xy or latlon).
	Input string `json:"input,omitempty"`

	// Format is the output format (text, json, yaml, csv or geojson).
	Format string `json:"format,omitempty"`

	// Workers is the maximum number of rows converted concurrently.
	Workers int `json:"workers,omitempty"`

	// Strict makes a command fail when any row fails to convert. When
	// false, failed cells are rendered blank and the command succeeds.
	Strict bool `json:"strict,omitempty"`
}

// Default returns the configuration used when no file exists. Input
// defaults to latlon, matching the tool's default input table.
func Default() *Config {
	return &Config{
		Input:   string(model.KindLatLon),
		Format:  string(model.FormatText),
		Workers: DefaultWorkers,
	}
}

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	// Field is the JSON field name that failed validation.
	Field string

	// Message describes what is wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks every field and returns all problems found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if _, err := model.ParseKind(c.Input); err != nil {
		errs = append(errs, ValidationError{Field: "input", Message: err.Error()})
	}
	if _, err := model.ParseFormat(c.Format); err != nil {
		errs = append(errs, ValidationError{Field: "format", Message: err.Error()})
	}
	if c.Workers < 1 {
		errs = append(errs, ValidationError{Field: "workers", Message: fmt.Sprintf("must be at least 1, got %d", c.Workers)})
	}
	return errs
}

// Kind returns the validated input kind.
func (c *Config) Kind() (model.Kind, error) {
	return model.ParseKind(c.Input)
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() (model.Format, error) {
	return model.ParseFormat(c.Format)
}

// LoadConfig reads a JSONC configuration file and overlays it on Default.
// Fields missing from the file keep their defaults.
//
// Returns a CLIError with ExitConfigError if the file cannot be read,
// parsed, or fails validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	// Strip comments and trailing commas before handing the bytes to
	// encoding/json.
	cfg := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid config file %s", path), &errs[0])
	}
	return cfg, nil
}

// Load resolves the configuration for a command. An explicit path must
// exist; otherwise FileName in dir is used when present, and Default when
// it is not. Environment overrides from dir/.env and the process
// environment are applied on top.
func Load(explicitPath, dir string) (*Config, string, error) {
	cfg, path, err := loadFile(explicitPath, dir)
	if err != nil {
		return nil, path, err
	}
	if err := ApplyEnv(cfg, dir); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func loadFile(explicitPath, dir string) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := LoadConfig(explicitPath)
		return cfg, explicitPath, err
	}

	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err == nil {
		cfg, err := LoadConfig(candidate)
		return cfg, candidate, err
	}
	return Default(), "", nil
}
