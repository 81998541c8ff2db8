package sheetparse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/sheetparse-go/internal"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/parser"
)

// Control tells ForEachSheet whether to go on after a callback.
type Control int

const (
	// Continue parses the next worksheet.
	Continue Control = iota
	// Stop ends the iteration without parsing further worksheets.
	Stop
)

// Callback receives each parsed worksheet. Returning Stop ends the
// iteration; returning an error aborts it and ForEachSheet returns the error.
type Callback func(ctx context.Context, result *models.ParsedWorksheetResult, clientData any) (Control, error)

// ForEachSheet opens the workbook at path and, in sheet order, parses every
// worksheet not hidden by name and passes the result to cb. Worksheets are
// handled one at a time; the next one is not read until cb returns.
//
// A structural problem in a worksheet is returned as a *ParseError and ends
// the iteration.
func ForEachSheet(ctx context.Context, path string, cb Callback, clientData any, opts Options) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return err
	}

	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer wb.Close()

	return ForEachWorksheet(ctx, wb, cb, clientData, opts)
}

// ForEachWorksheet is ForEachSheet over an already opened workbook.
func ForEachWorksheet(ctx context.Context, wb parser.Workbook, cb Callback, clientData any, opts Options) error {
	parseOpts := opts.parserOptions()
	logger := internal.DefaultLogger

	for _, ws := range parser.ListWorksheets(wb) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.ShouldReportProgress() {
			logger.Info("Parsing worksheet %q", ws.Name())
		}
		result, err := parser.ParseWorksheet(ws, parseOpts)
		if err != nil {
			return NewParseError(ws.Name(), "worksheet", err)
		}
		if opts.ShouldReportProgress() {
			logger.Info("Parsed worksheet %q: %s, %d entries", ws.Name(), result.DataLayout, result.NumDataEntriesParsed)
		}

		ctl, err := cb(ctx, result, clientData)
		if err != nil {
			return NewParseError(ws.Name(), "callback", err)
		}
		if ctl == Stop {
			return nil
		}
	}
	return nil
}

// ParseFile parses every eligible worksheet of the workbook at path.
func ParseFile(ctx context.Context, path string, opts Options) ([]*models.ParsedWorksheetResult, error) {
	var results []*models.ParsedWorksheetResult
	collect := func(_ context.Context, r *models.ParsedWorksheetResult, _ any) (Control, error) {
		results = append(results, r)
		return Continue, nil
	}
	if err := ForEachSheet(ctx, path, collect, nil, opts); err != nil {
		return nil, err
	}
	return results, nil
}
