// Package config loads the optional irishgrid configuration file.
//
// The file is JSONC (JSON with comments), parsed with
// github.com/tidwall/jsonc, and only supplies defaults for the command-line
// flags: which coordinate kind rows are entered as, the output format,
// how many rows to convert in parallel, and whether any failed row should
// fail the command. IRISHGRID_* environment variables, optionally read from
// a .env file with github.com/joho/godotenv, override the file, and flags
// override both. Projection parameters are never configurable.
package config
