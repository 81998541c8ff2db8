package parser

// dataBounds is the extent of non-empty cells at or below a starting row.
// maxRow is 1-based, maxCol 0-based; empty is true when no cell is set.
type dataBounds struct {
	maxRow, maxCol int
	empty          bool
}

// findDataBounds finds the last row and column holding a value from row
// fromRow on.
func findDataBounds(rows [][]Cell, fromRow int) dataBounds {
	b := dataBounds{maxRow: -1, maxCol: -1, empty: true}
	if fromRow < 1 {
		fromRow = 1
	}

	for rowNum := fromRow; rowNum <= len(rows); rowNum++ {
		for colIdx, cell := range rows[rowNum-1] {
			if cell.IsNil() {
				continue
			}
			if rowNum > b.maxRow {
				b.maxRow = rowNum
			}
			if colIdx > b.maxCol {
				b.maxCol = colIdx
			}
			b.empty = false
		}
	}

	return b
}

// nonEmptyRows returns the 1-based numbers of rows in [fromRow, toRow] that
// hold at least one value.
func nonEmptyRows(rows [][]Cell, fromRow, toRow int) []int {
	var out []int
	for rowNum := fromRow; rowNum <= toRow && rowNum <= len(rows); rowNum++ {
		if !isEmptyRow(rows[rowNum-1]) {
			out = append(out, rowNum)
		}
	}
	return out
}
