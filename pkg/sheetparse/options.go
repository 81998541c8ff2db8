// Package sheetparse parses workbooks laid out with a property-name row and a
// property-type row into typed records, one result per worksheet.
package sheetparse

import "github.com/ukaji3/sheetparse-go/pkg/sheetparse/parser"

// Options configures workbook parsing.
type Options struct {
	// ReportProgress logs each worksheet as it is parsed.
	// If nil, defaults to true.
	ReportProgress *bool
	// ReportWarnings sends cell and row diagnostics to Sink.
	// If nil, defaults to true.
	ReportWarnings *bool
	// StartingRowNum is the 1-based row where front matter or the header
	// pair begins in every worksheet. Zero means 1.
	StartingRowNum int
	// ListDelimiter separates values in row-value-list cells. Empty means ",".
	ListDelimiter string
	// Sink receives warnings. Nil means parser.ConsoleSink.
	Sink parser.Sink
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{
		StartingRowNum: 1,
		ListDelimiter:  parser.DefaultListDelimiter,
	}
}

// ShouldReportProgress returns whether to log worksheet progress.
func (o Options) ShouldReportProgress() bool {
	if o.ReportProgress != nil {
		return *o.ReportProgress
	}
	return true
}

// ShouldReportWarnings returns whether to emit diagnostics.
func (o Options) ShouldReportWarnings() bool {
	if o.ReportWarnings != nil {
		return *o.ReportWarnings
	}
	return true
}

// parserOptions converts to the per-worksheet parser options.
func (o Options) parserOptions() parser.Options {
	sink := o.Sink
	if sink == nil {
		sink = parser.ConsoleSink{}
	}
	return parser.Options{
		StartingRowNum: o.StartingRowNum,
		ReportWarnings: o.ShouldReportWarnings(),
		ListDelimiter:  o.ListDelimiter,
		Sink:           sink,
	}
}

// Bool returns a pointer to b, for the optional Options fields.
func Bool(b bool) *bool {
	return &b
}
