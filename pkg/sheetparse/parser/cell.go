// Package parser turns raw worksheet cells into typed records.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CellKind is the kind of raw value a cell holds.
type CellKind int

const (
	KindNil CellKind = iota
	KindBool
	KindNumber
	KindText
	KindDate
	KindError
)

func (k CellKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Cell is a raw cell value. Only the payload field matching Kind is
// meaningful, except Text which also keeps the source text of numbers.
type Cell struct {
	Kind   CellKind
	Bool   bool
	Number float64
	// Text holds the text for KindText, the raw digits for KindNumber and
	// the error code for KindError.
	Text string
	Date time.Time
	// Formula is the source formula when the value is a computed result.
	Formula string
}

// NilCell returns an empty cell.
func NilCell() Cell { return Cell{} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f, Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// TextCell returns a text cell. An empty string yields an empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return NilCell()
	}
	return Cell{Kind: KindText, Text: s}
}

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Date: t} }

// ErrorCell returns a cell carrying a spreadsheet error code such as "#DIV/0!".
func ErrorCell(code string) Cell { return Cell{Kind: KindError, Text: code} }

// WithFormula annotates c as the computed result of formula.
func (c Cell) WithFormula(formula string) Cell {
	c.Formula = formula
	return c
}

// IsNil reports whether the cell is empty.
func (c Cell) IsNil() bool { return c.Kind == KindNil }

// String renders the cell value as text.
func (c Cell) String() string {
	switch c.Kind {
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindNumber:
		if c.Text != "" {
			return c.Text
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText, KindError:
		return c.Text
	case KindDate:
		return c.Date.Format(time.RFC3339)
	default:
		return ""
	}
}

// Is reports whether the cell is text equal to s after trimming spaces.
func (c Cell) Is(s string) bool {
	return c.Kind == KindText && strings.TrimSpace(c.Text) == s
}

// isEmptyRow reports whether every cell in row is empty.
func isEmptyRow(row []Cell) bool {
	for _, c := range row {
		if !c.IsNil() {
			return false
		}
	}
	return true
}

// rowAt returns the 1-based row rowNum, or nil past the end.
func rowAt(rows [][]Cell, rowNum int) []Cell {
	if rowNum < 1 || rowNum > len(rows) {
		return nil
	}
	return rows[rowNum-1]
}

// cellAt returns the 0-based column col of row, or an empty cell.
func cellAt(row []Cell, col int) Cell {
	if col < 0 || col >= len(row) {
		return NilCell()
	}
	return row[col]
}

// trimRow drops trailing empty cells.
func trimRow(row []Cell) []Cell {
	end := len(row)
	for end > 0 && row[end-1].IsNil() {
		end--
	}
	return row[:end]
}

// CellOf converts a Go value to a Cell. Cells pass through unchanged and
// unsupported types are rendered as text with fmt.
func CellOf(v any) Cell {
	switch x := v.(type) {
	case nil:
		return NilCell()
	case Cell:
		return x
	case bool:
		return BoolCell(x)
	case int:
		return NumberCell(float64(x))
	case int64:
		return NumberCell(float64(x))
	case float32:
		return NumberCell(float64(x))
	case float64:
		return NumberCell(x)
	case string:
		return TextCell(x)
	case time.Time:
		return DateCell(x)
	default:
		return TextCell(fmt.Sprint(x))
	}
}
