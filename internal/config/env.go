package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shinji-kodama/irishgrid/internal/model"
)

// EnvFileName is the dotenv file read from the working directory.
const EnvFileName = ".env"

// Environment variables that override configuration file values.
const (
	EnvInput   = "IRISHGRID_INPUT"
	EnvFormat  = "IRISHGRID_FORMAT"
	EnvWorkers = "IRISHGRID_WORKERS"
	EnvStrict  = "IRISHGRID_STRICT"
)

var envKeys = []string{EnvInput, EnvFormat, EnvWorkers, EnvStrict}

// ApplyEnv overlays IRISHGRID_* settings onto cfg. Values come from
// dir/.env when it exists, and the process environment wins over the file.
// The merged configuration is validated again.
func ApplyEnv(cfg *Config, dir string) error {
	values, err := readEnv(dir)
	if err != nil {
		return err
	}

	if v, ok := values[EnvInput]; ok {
		cfg.Input = v
	}
	if v, ok := values[EnvFormat]; ok {
		cfg.Format = v
	}
	if v, ok := values[EnvWorkers]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvWorkers, fmt.Sprintf("not an integer: %q", v))
		}
		cfg.Workers = n
	}
	if v, ok := values[EnvStrict]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvStrict, fmt.Sprintf("not a boolean: %q", v))
		}
		cfg.Strict = b
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return model.WrapCLIError(model.ExitConfigError,
			"invalid configuration after environment overrides", &errs[0])
	}
	return nil
}

// readEnv collects the recognized variables from the dotenv file and the
// process environment. Unset variables are absent from the map.
func readEnv(dir string) (map[string]string, error) {
	values := make(map[string]string)

	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); err == nil {
		file, err := godotenv.Read(path)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to parse env file %s", path), err)
		}
		for _, key := range envKeys {
			if v, ok := file[key]; ok {
				values[key] = v
			}
		}
	}

	process := make(map[string]string)
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			process[key] = v
		}
	}
	maps.Copy(values, process)
	return values, nil
}

func envError(key, message string) error {
	return model.WrapCLIError(model.ExitConfigError, "invalid environment override",
		&ValidationError{Field: key, Message: message})
}
