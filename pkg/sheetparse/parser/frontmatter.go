package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
)

// FrontMatterDelimiter opens and closes a front matter block in column A.
const FrontMatterDelimiter = "---"

// FrontMatter is the metadata block that may precede a worksheet's header.
type FrontMatter struct {
	// Present is false when the starting row is not a delimiter row.
	Present   bool
	Meta      models.Record
	MetaTypes map[string]models.DataType
	// DataStartRowNum is the 1-based row holding the property names.
	DataStartRowNum int
}

// ParseFrontMatter reads an optional front matter block starting at
// startingRowNum. Each row between the delimiters must hold exactly three
// non-empty cells (name, type, value); other rows are reported and skipped,
// blank rows are ignored. A block that is never closed is a structural error.
func ParseFrontMatter(rows [][]Cell, startingRowNum int, worksheet string, opts Options) (FrontMatter, error) {
	opts = opts.withDefaults()
	if !cellAt(rowAt(rows, startingRowNum), 0).Is(FrontMatterDelimiter) {
		return FrontMatter{DataStartRowNum: startingRowNum}, nil
	}

	report := reporter{sink: opts.Sink, enabled: opts.ReportWarnings}
	coercer := NewCoercer(models.LayoutFrontMatterOnly, opts.ListDelimiter)
	fm := FrontMatter{
		Present:   true,
		Meta:      models.Record{},
		MetaTypes: map[string]models.DataType{},
	}

	for rowNum := startingRowNum + 1; rowNum <= len(rows); rowNum++ {
		row := rowAt(rows, rowNum)
		if cellAt(row, 0).Is(FrontMatterDelimiter) {
			fm.DataStartRowNum = rowNum + 1
			return fm, nil
		}
		if isEmptyRow(row) {
			continue
		}

		rowMeta := models.NewRowMeta(worksheet, rowNum)
		name, propType, value, ok := readTriple(row)
		if !ok {
			report.warn(Diagnostic{Meta: rowMeta.RowLevel(), Message: "Malformed front matter row: expected exactly 3 non-empty cells (name, type, value)"})
			continue
		}
		if !IsValidPropName(name) {
			report.warn(Diagnostic{Meta: rowMeta.Cell(0), Message: "Malformed front matter row: invalid property name " + strconv.Quote(name)})
			continue
		}
		t, err := models.ParseDataType(propType)
		if err != nil || t.IsList() {
			report.warn(Diagnostic{Meta: rowMeta.Cell(1).Prop(name, ""), Message: "Malformed front matter row: invalid property type " + strconv.Quote(propType)})
			continue
		}
		if value.Is(SkipSentinel) {
			continue
		}

		meta := rowMeta.Cell(2).Prop(name, t)
		parsed, diag := coercer.Coerce(t, value, meta)
		if diag != nil {
			parsed = report.warn(*diag)
		}
		fm.Meta[name] = parsed
		fm.MetaTypes[name] = t
	}

	return FrontMatter{}, structuralf(models.NewRowMeta(worksheet, startingRowNum), "front matter is never closed by a %q row", FrontMatterDelimiter)
}

func readTriple(row []Cell) (name, propType string, value Cell, ok bool) {
	cells := trimRow(row)
	if len(cells) != 3 {
		return "", "", Cell{}, false
	}
	for _, c := range cells {
		if c.IsNil() {
			return "", "", Cell{}, false
		}
	}
	return strings.TrimSpace(cells[0].String()), strings.TrimSpace(cells[1].String()), cells[2], true
}
