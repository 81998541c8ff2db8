package sheetparse

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/parser"
	"github.com/xuri/excelize/v2"
)

func testOptions() (Options, *parser.RecordingSink) {
	sink := &parser.RecordingSink{}
	opts := DefaultOptions()
	opts.ReportProgress = Bool(false)
	opts.Sink = sink
	return opts, sink
}

// createTestWorkbook writes a workbook with a list sheet, a hidden scratch
// sheet and a table sheet.
func createTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Settings"))
	require.NoError(t, f.SetSheetRow("Settings", "A1", &[]any{"region", "retries"}))
	require.NoError(t, f.SetSheetRow("Settings", "A2", &[]any{"string", "number"}))
	require.NoError(t, f.SetSheetRow("Settings", "A3", &[]any{"eu-west", 3}))

	_, err := f.NewSheet(".scratch")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(".scratch", "A1", &[]any{"not a header"}))

	_, err = f.NewSheet("Users")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Users", "A1", &[]any{"name", "admin"}))
	require.NoError(t, f.SetSheetRow("Users", "A2", &[]any{"string", "boolean"}))
	require.NoError(t, f.SetSheetRow("Users", "A3", &[]any{"alice", true}))
	require.NoError(t, f.SetSheetRow("Users", "A4", &[]any{"bob", "maybe"}))

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestForEachSheet(t *testing.T) {
	path := createTestWorkbook(t)
	opts, sink := testOptions()

	var got []*models.ParsedWorksheetResult
	cb := func(_ context.Context, r *models.ParsedWorksheetResult, clientData any) (Control, error) {
		assert.Equal(t, "client", clientData)
		got = append(got, r)
		return Continue, nil
	}
	require.NoError(t, ForEachSheet(context.Background(), path, cb, "client", opts))

	require.Len(t, got, 2)
	assert.Equal(t, "Settings", got[0].WorksheetName)
	assert.Equal(t, models.LayoutList, got[0].DataLayout)
	assert.Equal(t, models.Record{"region": "eu-west", "retries": float64(3)}, got[0].Data)

	assert.Equal(t, "Users", got[1].WorksheetName)
	assert.Equal(t, models.LayoutTable, got[1].DataLayout)
	records := got[1].Records()
	require.Len(t, records, 2)
	assert.Equal(t, true, records[0]["admin"])
	assert.Equal(t, "Invalid boolean value: maybe -> WS:Users, Row:4 Col:B", records[1]["admin"])

	require.Len(t, sink.Diagnostics, 1)
}

func TestForEachSheetStop(t *testing.T) {
	path := createTestWorkbook(t)
	opts, _ := testOptions()

	calls := 0
	cb := func(context.Context, *models.ParsedWorksheetResult, any) (Control, error) {
		calls++
		return Stop, nil
	}
	require.NoError(t, ForEachSheet(context.Background(), path, cb, nil, opts))
	assert.Equal(t, 1, calls)
}

func TestForEachSheetFileErrors(t *testing.T) {
	opts, _ := testOptions()
	noop := func(context.Context, *models.ParsedWorksheetResult, any) (Control, error) { return Continue, nil }

	err := ForEachSheet(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"), noop, nil, opts)
	assert.ErrorIs(t, err, ErrFileNotFound)

	bogus := filepath.Join(t.TempDir(), "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip archive"), 0644))
	err = ForEachSheet(context.Background(), bogus, noop, nil, opts)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestForEachWorksheetStructuralError(t *testing.T) {
	opts, _ := testOptions()
	wb := parser.NewMemWorkbook(
		parser.NewMemSheet("Good", []any{"a"}, []any{"string"}, []any{"x"}),
		parser.NewMemSheet("Bad", []any{"a"}, []any{"varchar"}),
		parser.NewMemSheet("Never", []any{"a"}, []any{"string"}, []any{"y"}),
	)

	var seen []string
	cb := func(_ context.Context, r *models.ParsedWorksheetResult, _ any) (Control, error) {
		seen = append(seen, r.WorksheetName)
		return Continue, nil
	}
	err := ForEachWorksheet(context.Background(), wb, cb, nil, opts)
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Bad", pe.SheetName)
	assert.Equal(t, "worksheet", pe.Component)
	assert.ErrorIs(t, err, parser.ErrStructural)
	assert.Equal(t, []string{"Good"}, seen)
}

func TestForEachWorksheetCallbackError(t *testing.T) {
	opts, _ := testOptions()
	wb := parser.NewMemWorkbook(
		parser.NewMemSheet("One", []any{"a"}, []any{"string"}, []any{"x"}),
		parser.NewMemSheet("Two", []any{"a"}, []any{"string"}, []any{"y"}),
	)
	errBoom := errors.New("boom")

	calls := 0
	cb := func(context.Context, *models.ParsedWorksheetResult, any) (Control, error) {
		calls++
		return Continue, errBoom
	}
	err := ForEachWorksheet(context.Background(), wb, cb, nil, opts)
	assert.ErrorIs(t, err, errBoom)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "callback", pe.Component)
	assert.Equal(t, 1, calls)
}

func TestForEachWorksheetCanceled(t *testing.T) {
	opts, _ := testOptions()
	wb := parser.NewMemWorkbook(parser.NewMemSheet("One", []any{"a"}, []any{"string"}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cb := func(context.Context, *models.ParsedWorksheetResult, any) (Control, error) {
		t.Fatal("callback must not run")
		return Continue, nil
	}
	assert.ErrorIs(t, ForEachWorksheet(ctx, wb, cb, nil, opts), context.Canceled)
}

func TestForEachWorksheetWarningsOff(t *testing.T) {
	opts, sink := testOptions()
	opts.ReportWarnings = Bool(false)
	wb := parser.NewMemWorkbook(parser.NewMemSheet("One", []any{"n"}, []any{"number"}, []any{"x"}))

	err := ForEachWorksheet(context.Background(), wb, func(context.Context, *models.ParsedWorksheetResult, any) (Control, error) {
		return Continue, nil
	}, nil, opts)
	require.NoError(t, err)
	assert.Empty(t, sink.Diagnostics)
}

func TestParseFile(t *testing.T) {
	path := createTestWorkbook(t)
	opts, _ := testOptions()

	results, err := ParseFile(context.Background(), path, opts)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Settings", results[0].WorksheetName)
	assert.Equal(t, "Users", results[1].WorksheetName)
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	assert.True(t, opts.ShouldReportProgress())
	assert.True(t, opts.ShouldReportWarnings())

	opts.ReportProgress = Bool(false)
	opts.ReportWarnings = Bool(false)
	assert.False(t, opts.ShouldReportProgress())
	assert.False(t, opts.ShouldReportWarnings())

	p := opts.parserOptions()
	assert.False(t, p.ReportWarnings)
	assert.IsType(t, parser.ConsoleSink{}, p.Sink)
}
