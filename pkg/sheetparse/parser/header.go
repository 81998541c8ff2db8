package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
)

var propNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsValidPropName reports whether s is an identifier-like property name.
func IsValidPropName(s string) bool {
	return propNamePattern.MatchString(s)
}

// Header is the validated property-name and property-type row pair.
type Header struct {
	Names []string
	Types []models.DataType
}

// Mismatched reports whether the rows declare a different number of entries.
func (h Header) Mismatched() bool {
	return len(h.Names) != len(h.Types)
}

// DataTypes returns the name to type map. It assumes the rows match.
func (h Header) DataTypes() map[string]models.DataType {
	m := make(map[string]models.DataType, len(h.Names))
	for i, name := range h.Names {
		m[name] = h.Types[i]
	}
	return m
}

// ReadHeader reads the property-name row at nameRowNum and the property-type
// row below it. Missing or empty rows, invalid or duplicate names and types
// outside the vocabulary are structural errors. A length mismatch is left
// for the caller to report.
func ReadHeader(rows [][]Cell, nameRowNum int, worksheet string) (Header, error) {
	nameMeta := models.NewRowMeta(worksheet, nameRowNum)
	typeMeta := models.NewRowMeta(worksheet, nameRowNum+1)

	nameRow := trimRow(rowAt(rows, nameRowNum))
	if len(nameRow) == 0 {
		return Header{}, structuralf(nameMeta, "missing property-name row")
	}
	typeRow := trimRow(rowAt(rows, nameRowNum+1))
	if len(typeRow) == 0 {
		return Header{}, structuralf(typeMeta, "missing property-type row")
	}

	var h Header
	seen := make(map[string]bool, len(nameRow))
	for col, cell := range nameRow {
		name := strings.TrimSpace(cell.String())
		if cell.Kind != KindText || !IsValidPropName(name) {
			return Header{}, structuralf(nameMeta, "invalid property name %q in column %s", cell.String(), ColumnLetters(col))
		}
		if seen[name] {
			return Header{}, structuralf(nameMeta, "duplicate property name %q in column %s", name, ColumnLetters(col))
		}
		seen[name] = true
		h.Names = append(h.Names, name)
	}

	for col, cell := range typeRow {
		t, err := models.ParseDataType(cell.String())
		if cell.Kind != KindText || err != nil {
			return Header{}, structuralf(typeMeta, "invalid property type %q in column %s", cell.String(), ColumnLetters(col))
		}
		h.Types = append(h.Types, t)
	}

	return h, nil
}
