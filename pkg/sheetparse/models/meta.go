package models

// WorksheetMeta identifies the worksheet a diagnostic belongs to.
type WorksheetMeta struct {
	// WorksheetName is the sheet name as it appears in the workbook.
	WorksheetName string `json:"worksheetName"`
}

// RowMeta locates a row within a worksheet.
type RowMeta struct {
	WorksheetMeta
	// RowNumber is the 1-based row number.
	RowNumber int `json:"rowNumber"`
}

// CellMeta locates a cell and, for data cells, the property it feeds.
// ColNumber is 0-based; a negative value means the diagnostic is row-level.
type CellMeta struct {
	RowMeta
	ColNumber int      `json:"colNumber"`
	PropName  string   `json:"propName,omitempty"`
	PropType  DataType `json:"propType,omitempty"`
}

// NewRowMeta builds a RowMeta.
func NewRowMeta(worksheet string, row int) RowMeta {
	return RowMeta{WorksheetMeta: WorksheetMeta{WorksheetName: worksheet}, RowNumber: row}
}

// Cell returns a CellMeta for column col of this row.
func (m RowMeta) Cell(col int) CellMeta {
	return CellMeta{RowMeta: m, ColNumber: col}
}

// RowLevel returns a CellMeta that carries no column.
func (m RowMeta) RowLevel() CellMeta {
	return CellMeta{RowMeta: m, ColNumber: -1}
}

// Prop returns a copy of m annotated with a property name and type.
func (m CellMeta) Prop(name string, t DataType) CellMeta {
	m.PropName = name
	m.PropType = t
	return m
}
