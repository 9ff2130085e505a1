package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/irishgrid/internal/config"
	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/table"
)

// rowFlags are the input flags shared by every command that reads rows.
type rowFlags struct {
	// from is the coordinate kind of the input rows.
	from string

	// file is a CSV file of rows, or "-" for stdin.
	file string

	// workers caps how many rows are converted concurrently.
	workers int
}

// bindRowFlags registers the shared input flags on cmd.
func bindRowFlags(cmd *cobra.Command, flags *rowFlags) {
	cmd.Flags().StringVarP(&flags.from, "from", "f", "",
		"Input kind: gridref, xy, latlon (default from config, else latlon)")
	cmd.Flags().StringVar(&flags.file, "file", "",
		"Read rows from a CSV file, or - for stdin")
	cmd.Flags().IntVar(&flags.workers, "workers", 0,
		"Rows converted in parallel (default from config, else 8)")
}

// settings are the effective options after merging flags over the config.
type settings struct {
	cfg     *config.Config
	kind    model.Kind
	workers int
}

// loadSettings reads the configuration file and applies flag overrides.
func loadSettings(cmd *cobra.Command, flags *rowFlags) (*settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to determine working directory", err)
	}

	cfg, path, err := config.Load(configPath, wd)
	if err != nil {
		return nil, err // config.Load already returns CLIError with ExitConfigError
	}
	if path != "" {
		VerboseLog("Loaded config from %s", path)
	}

	kind, err := cfg.Kind()
	if cmd.Flags().Changed("from") {
		kind, err = model.ParseKind(flags.from)
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidInput, "invalid --from value", err)
	}

	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = flags.workers
	}
	if workers < 1 {
		return nil, model.NewCLIError(model.ExitInvalidInput,
			fmt.Sprintf("--workers must be at least 1, got %d", workers))
	}

	return &settings{cfg: cfg, kind: kind, workers: workers}, nil
}

// readRows collects input rows from positional arguments followed by the
// --file source, numbering them 1..n in that order.
func readRows(cmd *cobra.Command, args []string, file string, kind model.Kind) ([]table.Input, error) {
	inputs := table.InputsFromArgs(args, kind)

	if file != "" {
		fileInputs, err := readFileRows(cmd, file, kind)
		if err != nil {
			return nil, err
		}
		for _, in := range fileInputs {
			in.Index = len(inputs) + 1
			inputs = append(inputs, in)
		}
	}

	if len(inputs) == 0 {
		return nil, model.NewCLIError(model.ExitInvalidInput,
			"no input rows: pass rows as arguments or use --file")
	}
	VerboseLog("Read %d %s rows", len(inputs), kind)
	return inputs, nil
}

// readFileRows reads CSV rows from a file path or, for "-", from stdin.
func readFileRows(cmd *cobra.Command, file string, kind model.Kind) ([]table.Input, error) {
	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitInvalidInput,
				fmt.Sprintf("failed to open input file %s", file), err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	inputs, err := table.ReadInputs(r, kind)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidInput, "failed to read input rows", err)
	}
	return inputs, nil
}

// logFailures reports each failed row on stderr in verbose mode.
func logFailures(rows []table.Row) []table.Row {
	failed := table.Failed(rows)
	for _, row := range failed {
		VerboseLog("Row %d (%q): %v", row.Index, row.Input, row.Err())
	}
	return failed
}
