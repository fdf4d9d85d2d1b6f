// Package main provides the CLI entry point for xlsxdiff.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/ukaji3/xlsxdiff-go/internal/config"
	"github.com/ukaji3/xlsxdiff-go/internal/log"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/models"
	"github.com/ukaji3/xlsxdiff-go/pkg/xlsxdiff/output"
)

type flags struct {
	outputPath       string
	format           string
	pretty           bool
	outDir           string
	sheets           []string
	swap             bool
	rowGap           float64
	colGap           float64
	maxCells         int
	workers          int
	reportColumnGaps bool
	configPath       string
}

func main() {
	log.InitLogger()
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Debug("xlsxdiff failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "xlsxdiff [primary.xlsx] [secondary.xlsx]",
		Short: "Compare two Excel workbooks sheet by sheet",
		Long: `xlsxdiff aligns the rows and columns of two workbooks and reports
text, formula, formatting, comment and inserted/deleted row differences.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fs := rootCmd.Flags()
	fs.StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	fs.StringVar(&f.format, "format", "json", "Output format: json or yaml")
	fs.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	fs.StringVar(&f.outDir, "out-dir", "", "Directory for per-sheet logs, summary and highlighted copies")
	fs.StringSliceVar(&f.sheets, "sheet", nil, "Sheet to compare (repeatable; default: all sheets)")
	fs.BoolVar(&f.swap, "swap", false, "Swap primary and secondary workbooks")
	fs.Float64Var(&f.rowGap, "row-gap", -0.15, "Row gap penalty")
	fs.Float64Var(&f.colGap, "col-gap", -0.30, "Column gap penalty")
	fs.IntVar(&f.maxCells, "max-cells", 16_000_000, "Maximum alignment matrix size (0: unlimited)")
	fs.IntVar(&f.workers, "workers", 0, "Concurrent row-pair workers (0: one per CPU)")
	fs.BoolVar(&f.reportColumnGaps, "report-column-gaps", false, "Report columns present on one side only")
	fs.StringVar(&f.configPath, "config", "", "YAML config file (default: $XLSXDIFF_CONFIG)")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	primaryPath, secondaryPath := args[0], args[1]
	if f.swap {
		primaryPath, secondaryPath = secondaryPath, primaryPath
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd, f, cfg)
	if err != nil {
		return err
	}

	log.Tracef("comparing %s with %s: row gap %.2f, column gap %.2f, max cells %d, workers %d",
		primaryPath, secondaryPath, opts.RowGapPenalty(), opts.ColumnGapPenalty(), opts.MaxAlignmentCells(), opts.WorkerCount())
	wd, err := xlsxdiff.CompareFiles(cmd.Context(), primaryPath, secondaryPath, opts)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	var data []byte
	switch f.format {
	case "yaml":
		data, err = output.ToYAML(wd)
	default:
		data, err = output.ToJSON(wd, f.pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if f.outDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if f.outDir != "" {
		if err := writeReports(wd, f.outDir, primaryPath, secondaryPath); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
	}

	printSummary(cmd.ErrOrStderr(), wd)

	if failed := wd.Failed(); len(failed) > 0 {
		for _, sd := range failed {
			log.Errorf("sheet %q could not be compared: %s", sd.Name, sd.Error)
		}
		return fmt.Errorf("%d sheet(s) could not be compared: %s", len(failed), failed[0].Error)
	}
	return nil
}

// resolveOptions layers defaults, the config file and explicitly set flags.
func resolveOptions(cmd *cobra.Command, f *flags, cfg *config.File) (xlsxdiff.Options, error) {
	opts := xlsxdiff.DefaultOptions()
	cfg.Apply(&opts)

	changed := cmd.Flags().Changed
	if changed("row-gap") {
		opts.RowGap = &f.rowGap
	}
	if changed("col-gap") {
		opts.ColumnGap = &f.colGap
	}
	if changed("max-cells") {
		opts.MaxCells = &f.maxCells
	}
	if changed("workers") || cfg.Workers == nil {
		opts.Workers = f.workers
	}
	if changed("report-column-gaps") {
		opts.ReportColumnGaps = f.reportColumnGaps
	}
	if changed("sheet") {
		opts.Sheets = f.sheets
	}

	if !changed("format") && cfg.Format != nil {
		f.format = *cfg.Format
	}
	if !changed("pretty") && cfg.Pretty != nil {
		f.pretty = *cfg.Pretty
	}
	if !changed("out-dir") && cfg.OutDir != nil {
		f.outDir = *cfg.OutDir
	}

	if f.format != "json" && f.format != "yaml" {
		return opts, fmt.Errorf("invalid format: %s (must be json or yaml)", f.format)
	}
	if opts.MaxCells != nil && *opts.MaxCells < 0 {
		return opts, fmt.Errorf("invalid max-cells: %d", *opts.MaxCells)
	}
	return opts, nil
}

func writeReports(wd *models.WorkbookDiff, dir, primaryPath, secondaryPath string) error {
	for _, sd := range wd.Sheets {
		if sd.Status == models.SheetFailed {
			log.Warnf("no report for sheet %q: %s", sd.Name, sd.Error)
			continue
		}
		if err := output.WriteSheetReport(dir, primaryPath, secondaryPath, sd); err != nil {
			return err
		}
		log.Infof("report for sheet %q written to %s", sd.Name, dir)
	}
	return nil
}

func printSummary(w io.Writer, wd *models.WorkbookDiff) {
	for _, sd := range wd.Sheets {
		if sd.Status == models.SheetFailed {
			fmt.Fprintf(w, "%-20s %-15s %s\n", sd.Name, sd.Status, sd.Error)
			continue
		}
		fmt.Fprintf(w, "%-20s %-15s %s differences\n", sd.Name, sd.Status, humanize.Comma(int64(sd.Result.Count())))
	}
	fmt.Fprintf(w, "%s compared, %s differences\n",
		english.Plural(len(wd.Sheets), "sheet", ""), humanize.Comma(int64(wd.Count())))
}
