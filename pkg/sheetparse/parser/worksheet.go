package parser

import (
	"fmt"

	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
)

// Options configures worksheet parsing.
type Options struct {
	// StartingRowNum is the 1-based row where front matter or the header
	// pair begins. Zero means 1.
	StartingRowNum int
	// ReportWarnings forwards diagnostics to Sink.
	ReportWarnings bool
	// ListDelimiter separates values in row-value-list cells. Empty means ",".
	ListDelimiter string
	// Sink receives warnings. Nil means ConsoleSink.
	Sink Sink
}

// DefaultOptions returns options that start at row 1 and print warnings.
func DefaultOptions() Options {
	return Options{
		StartingRowNum: 1,
		ReportWarnings: true,
		ListDelimiter:  DefaultListDelimiter,
		Sink:           ConsoleSink{},
	}
}

func (o Options) withDefaults() Options {
	if o.StartingRowNum < 1 {
		o.StartingRowNum = 1
	}
	if o.ListDelimiter == "" {
		o.ListDelimiter = DefaultListDelimiter
	}
	if o.Sink == nil {
		o.Sink = ConsoleSink{}
	}
	return o
}

// ParseWorksheet parses a worksheet into typed records.
func ParseWorksheet(ws Worksheet, opts Options) (*models.ParsedWorksheetResult, error) {
	rows, err := ws.Rows()
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", ws.Name(), err)
	}
	return ParseRows(ws.Name(), rows, opts)
}

// ParseRows parses the rows of a worksheet named name.
//
// Front matter is read first, then the header pair at the data start row.
// The number of non-empty rows below the header decides the layout: none is
// frontMatterOnly, one is dataList and more is dataTable. Structural problems
// return a *StructuralError; a name/type count mismatch is reported and
// yields an empty result.
func ParseRows(name string, rows [][]Cell, opts Options) (*models.ParsedWorksheetResult, error) {
	opts = opts.withDefaults()
	report := reporter{sink: opts.Sink, enabled: opts.ReportWarnings}

	fm, err := ParseFrontMatter(rows, opts.StartingRowNum, name, opts)
	if err != nil {
		return nil, err
	}

	bounds := findDataBounds(rows, fm.DataStartRowNum)
	if fm.Present && bounds.empty {
		result := models.EmptyResult(name, models.LayoutFrontMatterOnly)
		result.DataStartRowNum = fm.DataStartRowNum
		attachMeta(result, fm)
		return result, nil
	}

	header, err := ReadHeader(rows, fm.DataStartRowNum, name)
	if err != nil {
		return nil, err
	}

	dataRows := nonEmptyRows(rows, fm.DataStartRowNum+2, bounds.maxRow)
	layout := detectLayout(len(dataRows))

	if header.Mismatched() {
		report.warn(Diagnostic{
			Meta: models.NewRowMeta(name, fm.DataStartRowNum).RowLevel(),
			Message: fmt.Sprintf("Property name count (%d) does not match property type count (%d); worksheet skipped",
				len(header.Names), len(header.Types)),
		})
		result := models.EmptyResult(name, layout)
		result.DataStartRowNum = fm.DataStartRowNum
		attachMeta(result, fm)
		return result, nil
	}

	p := &sheetParser{
		name:    name,
		header:  header,
		coercer: NewCoercer(layout, opts.ListDelimiter),
		report:  report,
	}
	if bounds.maxCol >= len(header.Names) {
		p.warnUnnamedColumns(rows, dataRows)
	}

	result := &models.ParsedWorksheetResult{
		WorksheetName:   name,
		DataLayout:      layout,
		DataTypes:       header.DataTypes(),
		DataStartRowNum: fm.DataStartRowNum,
	}
	switch layout {
	case models.LayoutList:
		result.Data = p.buildRecord(rowAt(rows, dataRows[0]), dataRows[0])
		result.NumDataEntriesParsed = 1
	case models.LayoutTable:
		records := make([]models.Record, 0, len(dataRows))
		for _, rowNum := range dataRows {
			records = append(records, p.buildRecord(rowAt(rows, rowNum), rowNum))
		}
		result.Data = records
		result.NumDataEntriesParsed = len(records)
	default:
		result.Data = []models.Record{}
	}
	attachMeta(result, fm)
	return result, nil
}

func detectLayout(numDataRows int) models.DataLayout {
	switch {
	case numDataRows == 0:
		return models.LayoutFrontMatterOnly
	case numDataRows == 1:
		return models.LayoutList
	default:
		return models.LayoutTable
	}
}

func attachMeta(result *models.ParsedWorksheetResult, fm FrontMatter) {
	if !fm.Present {
		return
	}
	result.Meta = fm.Meta
	result.MetaTypes = fm.MetaTypes
}

type sheetParser struct {
	name    string
	header  Header
	coercer *Coercer
	report  reporter
}

// buildRecord coerces each column of a data row per its declared type. Cells
// holding the skip sentinel leave their property out; cells that fail to
// coerce carry the rendered diagnostic as their value.
func (p *sheetParser) buildRecord(row []Cell, rowNum int) models.Record {
	rowMeta := models.NewRowMeta(p.name, rowNum)
	record := make(models.Record, len(p.header.Names))
	for col, propName := range p.header.Names {
		raw := cellAt(row, col)
		if raw.Is(SkipSentinel) {
			continue
		}
		propType := p.header.Types[col]
		value, diag := p.coercer.Coerce(propType, raw, rowMeta.Cell(col).Prop(propName, propType))
		if diag != nil {
			record[propName] = p.report.warn(*diag)
			continue
		}
		record[propName] = value
	}
	return record
}

// warnUnnamedColumns reports values to the right of the last named column.
func (p *sheetParser) warnUnnamedColumns(rows [][]Cell, dataRows []int) {
	for _, rowNum := range dataRows {
		row := rowAt(rows, rowNum)
		for col := len(p.header.Names); col < len(row); col++ {
			if row[col].IsNil() {
				continue
			}
			p.report.warn(*diagnosticf(models.NewRowMeta(p.name, rowNum).Cell(col),
				"Value %q has no property name and was ignored", row[col].String()))
		}
	}
}
