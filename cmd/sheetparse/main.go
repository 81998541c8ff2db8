// Package main provides the CLI entry point for sheetparse-go.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetparse-go/internal"
	"github.com/ukaji3/sheetparse-go/internal/config"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/output"
)

var (
	outputPath    string
	pretty        bool
	format        string
	sheetsDir     string
	startRow      int
	listDelimiter string
	limit         int
	noWarnings    bool
	quiet         bool
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if level, ok := internal.ParseLogLevel(cfg.LogLevel); ok {
		internal.DefaultLogger.SetLevel(level)
	}

	rootCmd := &cobra.Command{
		Use:   "sheetparse [input.xlsx]",
		Short: "Parse typed worksheets into records",
		Long: `sheetparse-go reads every worksheet of a workbook laid out with a
property-name row and a property-type row (optionally preceded by a
front matter block) and outputs the typed records as JSON or YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", cfg.Format, "Output format: json, yaml")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().IntVar(&startRow, "start-row", cfg.StartingRowNum, "Row where front matter or the header begins")
	rootCmd.Flags().StringVar(&listDelimiter, "list-delimiter", cfg.ListDelimiter, "Separator for :list cells")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many worksheets (0: all)")
	rootCmd.Flags().BoolVar(&noWarnings, "no-warnings", !cfg.ReportWarnings, "Do not print cell warnings")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", !cfg.ReportProgress, "Do not print progress")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	if startRow < 1 {
		return fmt.Errorf("invalid start row: %d (must be 1 or more)", startRow)
	}

	opts := sheetparse.Options{
		ReportProgress: sheetparse.Bool(!quiet),
		ReportWarnings: sheetparse.Bool(!noWarnings),
		StartingRowNum: startRow,
		ListDelimiter:  listDelimiter,
	}

	var results []*models.ParsedWorksheetResult
	collect := func(_ context.Context, r *models.ParsedWorksheetResult, _ any) (sheetparse.Control, error) {
		results = append(results, r)
		if limit > 0 && len(results) >= limit {
			return sheetparse.Stop, nil
		}
		return sheetparse.Continue, nil
	}
	if err := sheetparse.ForEachSheet(cmd.Context(), inputPath, collect, nil, opts); err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	data, err := output.Encode(results, outFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(data))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(results, sheetsDir, outFormat); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(results []*models.ParsedWorksheetResult, dir string, f output.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, r := range results {
		data, err := output.EncodeSheet(r, f, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, r.WorksheetName+f.Extension())
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
