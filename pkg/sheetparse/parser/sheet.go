package parser

// Worksheet is a read-only view of one sheet's raw cells.
type Worksheet interface {
	// Name returns the sheet name.
	Name() string
	// Visible reports the sheet's visibility state in the workbook.
	Visible() bool
	// Rows returns the sheet's rows; index i holds row number i+1.
	// Rows may have different lengths and trailing empty rows may be absent.
	Rows() ([][]Cell, error)
}

// Workbook exposes worksheets in workbook order.
type Workbook interface {
	Worksheets() []Worksheet
}

// MemSheet is an in-memory Worksheet.
type MemSheet struct {
	SheetName string
	Hidden    bool
	Cells     [][]Cell
}

// NewMemSheet builds a MemSheet from Go values, one slice per row. Values are
// converted with CellOf.
func NewMemSheet(name string, rows ...[]any) *MemSheet {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, v := range row {
			cells[i][j] = CellOf(v)
		}
	}
	return &MemSheet{SheetName: name, Cells: cells}
}

func (s *MemSheet) Name() string            { return s.SheetName }
func (s *MemSheet) Visible() bool           { return !s.Hidden }
func (s *MemSheet) Rows() ([][]Cell, error) { return s.Cells, nil }

// MemWorkbook is an in-memory Workbook.
type MemWorkbook struct {
	Sheets []Worksheet
}

// NewMemWorkbook returns a workbook holding sheets in order.
func NewMemWorkbook(sheets ...Worksheet) *MemWorkbook {
	return &MemWorkbook{Sheets: sheets}
}

func (w *MemWorkbook) Worksheets() []Worksheet { return w.Sheets }
