package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook reads worksheets from an xlsx file through excelize.
type ExcelWorkbook struct {
	f          *excelize.File
	date1904   bool
	dateStyles map[int]bool
}

// OpenWorkbook opens the xlsx file at path. The caller must Close it.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewExcelWorkbook(f), nil
}

// NewExcelWorkbook wraps an already opened excelize file.
func NewExcelWorkbook(f *excelize.File) *ExcelWorkbook {
	wb := &ExcelWorkbook{f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb
}

// File returns the underlying excelize file.
func (w *ExcelWorkbook) File() *excelize.File { return w.f }

// Close releases the underlying file.
func (w *ExcelWorkbook) Close() error { return w.f.Close() }

// Worksheets returns one lazily loaded worksheet per sheet, in workbook order.
func (w *ExcelWorkbook) Worksheets() []Worksheet {
	names := w.f.GetSheetList()
	sheets := make([]Worksheet, len(names))
	for i, name := range names {
		sheets[i] = &excelSheet{wb: w, name: name}
	}
	return sheets
}

type excelSheet struct {
	wb   *ExcelWorkbook
	name string
	rows [][]Cell
}

func (s *excelSheet) Name() string { return s.name }

func (s *excelSheet) Visible() bool {
	visible, err := s.wb.f.GetSheetVisible(s.name)
	if err != nil {
		return true
	}
	return visible
}

func (s *excelSheet) Rows() ([][]Cell, error) {
	if s.rows != nil {
		return s.rows, nil
	}
	rows, err := s.wb.readRows(s.name)
	if err != nil {
		return nil, err
	}
	s.rows = rows
	return rows, nil
}

// readRows reads every row of a sheet, classifying each non-empty cell.
func (w *ExcelWorkbook) readRows(sheetName string) ([][]Cell, error) {
	rows, err := w.f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([][]Cell, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cells := make([]Cell, len(row))
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = w.readCell(sheetName, cellName, value)
		}
		result[rowIdx] = cells
	}

	return result, nil
}

// readCell converts a raw cell value using the cell's stored type.
func (w *ExcelWorkbook) readCell(sheetName, cellName, value string) Cell {
	cellType, err := w.f.GetCellType(sheetName, cellName)
	if err != nil {
		return TextCell(value)
	}

	var c Cell
	switch cellType {
	case excelize.CellTypeBool:
		c = BoolCell(value == "1" || strings.EqualFold(value, "true"))
	case excelize.CellTypeError:
		c = ErrorCell(value)
	case excelize.CellTypeDate:
		if t, ok := parseISODate(value); ok {
			c = DateCell(t)
		} else {
			c = TextCell(value)
		}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		c = w.readNumber(sheetName, cellName, value)
	default:
		// Shared and inline strings, and string results of formulas.
		c = TextCell(value)
	}

	if formula, err := w.f.GetCellFormula(sheetName, cellName); err == nil && formula != "" {
		c = c.WithFormula(formula)
	}
	return c
}

// readNumber parses a numeric cell, returning a date when its style carries a
// date number format.
func (w *ExcelWorkbook) readNumber(sheetName, cellName, value string) Cell {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return TextCell(value)
	}
	if w.hasDateStyle(sheetName, cellName) {
		if t, err := excelize.ExcelDateToTime(f, w.date1904); err == nil {
			return DateCell(t)
		}
	}
	return Cell{Kind: KindNumber, Number: f, Text: value}
}

func (w *ExcelWorkbook) hasDateStyle(sheetName, cellName string) bool {
	styleID, err := w.f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := w.dateStyles[styleID]; ok {
		return isDate
	}
	isDate := false
	if style, err := w.f.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	w.dateStyles[styleID] = isDate
	return isDate
}

var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
