package parser

import (
	"regexp"
	"strings"
)

// builtinDateFormats are the built-in number format ids that render dates or
// times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

var (
	dateFormatChars   = "yYmMdDhHsS"
	numberFormatChars = "0#?"
	formatSkipChars   = "$-+/():, "
	bracketedSection  = regexp.MustCompile(`\[.*?\]`)
)

var nonDateFormats = map[string]bool{
	"0.00E+00": true,
	"##0.0E+0": true,
	"General":  true,
	"GENERAL":  true,
	"general":  true,
	"@":        true,
}

func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return builtinDateFormats[numFmt]
}

// isDateFormatCode reports whether a number format code renders a date:
// quoted text, escaped characters and bracketed sections are ignored, and the
// remainder must contain date characters but no digit placeholders.
func isDateFormatCode(code string) bool {
	// Only the positive section decides.
	if idx := strings.IndexByte(code, ';'); idx >= 0 {
		code = code[:idx]
	}

	const (
		plain = iota
		quoted
		escaped
	)
	state := plain
	var b strings.Builder
	for _, c := range code {
		switch state {
		case plain:
			switch {
			case c == '"':
				state = quoted
			case c == '\\' || c == '_' || c == '*':
				state = escaped
			case strings.ContainsRune(formatSkipChars, c):
			default:
				b.WriteRune(c)
			}
		case quoted:
			if c == '"' {
				state = plain
			}
		case escaped:
			state = plain
		}
	}

	reduced := bracketedSection.ReplaceAllString(b.String(), "")
	if nonDateFormats[reduced] {
		return false
	}

	dateChars, numChars := 0, 0
	for _, c := range reduced {
		switch {
		case strings.ContainsRune(dateFormatChars, c):
			dateChars++
		case strings.ContainsRune(numberFormatChars, c):
			numChars++
		}
	}
	return dateChars > 0 && numChars == 0
}
