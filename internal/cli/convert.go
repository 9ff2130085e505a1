// Package cli: convert.go implements the "irishgrid convert" command.
//
// The convert command reads rows of one coordinate kind, converts each row
// to all three representations, and prints the output table. A row that
// fails is rendered with blank cells; --strict turns any failure into a
// non-zero exit.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/irishgrid/internal/config"
	"github.com/shinji-kodama/irishgrid/internal/model"
	"github.com/shinji-kodama/irishgrid/internal/table"
)

// convertFlags holds the flag values for the convert command.
type convertFlags struct {
	rowFlags

	// format is the output format: text, json, yaml, csv or geojson.
	format string

	// strict fails the command if any row fails to convert.
	strict bool
}

// NewConvertCommand creates the "convert" cobra command.
func NewConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [rows...]",
		Short: "Convert rows between grid references, XY and lat/lon",
		Long: `Convert rows of one coordinate kind into every representation.

Each positional argument is one row. Rows can also be read from a CSV file
(--file rows.csv) or stdin (--file -). Grid references use a single cell;
XY and lat/lon use two cells or one cell separated by a comma or spaces.

Examples:
  irishgrid convert "52.01, -9.57"
  irishgrid convert --from xy "92315 85538"
  irishgrid convert --from gridref "V 92315 85538" "N 15904 34671"
  irishgrid convert --from latlon --file points.csv --format geojson`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args)
		},
	}

	bindRowFlags(cmd, &flags.rowFlags)
	cmd.Flags().StringVarP(&flags.format, "format", "o", "",
		"Output format: text, json, yaml, csv, geojson (default from config, else text)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"Exit with an error if any row fails to convert")

	return cmd
}

// runConvert is the main logic function for the convert command.
func runConvert(cmd *cobra.Command, flags *convertFlags, args []string) error {
	s, err := loadSettings(cmd, &flags.rowFlags)
	if err != nil {
		return err
	}

	format, err := resolveFormat(cmd, flags, s.cfg)
	if err != nil {
		return err
	}

	strict := s.cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = flags.strict
	}

	inputs, err := readRows(cmd, args, flags.file, s.kind)
	if err != nil {
		return err
	}

	rows := table.ConvertRows(inputs, s.kind, s.workers)
	failed := logFailures(rows)

	if err := table.Write(cmd.OutOrStdout(), rows, format); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to write output", err)
	}

	if strict && len(failed) > 0 {
		return model.WrapCLIError(model.ExitConversionFailed,
			fmt.Sprintf("%d of %d rows failed to convert (first: row %d)", len(failed), len(rows), failed[0].Index),
			failed[0].Err())
	}
	return nil
}

// resolveFormat picks the output format: --json wins, then --format, then
// the config file.
func resolveFormat(cmd *cobra.Command, flags *convertFlags, cfg *config.Config) (model.Format, error) {
	if IsJSONOutput() {
		return model.FormatJSON, nil
	}

	format, err := cfg.OutputFormat()
	if cmd.Flags().Changed("format") {
		format, err = model.ParseFormat(flags.format)
	}
	if err != nil {
		return "", model.WrapCLIError(model.ExitInvalidInput, "invalid --format value", err)
	}
	return format, nil
}
