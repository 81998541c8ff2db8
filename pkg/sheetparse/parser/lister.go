package parser

import (
	"regexp"
	"strings"
)

// HiddenPrefix marks a worksheet that is skipped by default.
const HiddenPrefix = "."

// Predicate selects worksheets.
type Predicate func(ws Worksheet) bool

// NotHidden rejects worksheets whose name starts with HiddenPrefix.
func NotHidden(ws Worksheet) bool {
	return !strings.HasPrefix(ws.Name(), HiddenPrefix)
}

// Visible rejects worksheets hidden in the workbook itself.
func Visible(ws Worksheet) bool {
	return ws.Visible()
}

// NameIn accepts worksheets with one of the given names.
func NameIn(names ...string) Predicate {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(ws Worksheet) bool { return set[ws.Name()] }
}

// NameMatches accepts worksheets whose name matches re.
func NameMatches(re *regexp.Regexp) Predicate {
	return func(ws Worksheet) bool { return re.MatchString(ws.Name()) }
}

// ListWorksheets returns, in workbook order, the worksheets for which every
// predicate holds. NotHidden is always applied.
func ListWorksheets(wb Workbook, preds ...Predicate) []Worksheet {
	all := make([]Predicate, 0, len(preds)+1)
	all = append(all, preds...)
	all = append(all, NotHidden)

	var out []Worksheet
	for _, ws := range wb.Worksheets() {
		if matchesAll(ws, all) {
			out = append(out, ws)
		}
	}
	return out
}

func matchesAll(ws Worksheet, preds []Predicate) bool {
	for _, p := range preds {
		if p != nil && !p(ws) {
			return false
		}
	}
	return true
}
