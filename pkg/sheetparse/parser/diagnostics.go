package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetparse-go/internal"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
)

// ErrStructural marks problems that make a worksheet unparseable.
var ErrStructural = errors.New("structural worksheet error")

// StructuralError reports a missing or invalid header, or unterminated front
// matter. It aborts the worksheet's parse.
type StructuralError struct {
	Worksheet string
	Row       int
	Reason    string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("worksheet %q row %d: %s", e.Worksheet, e.Row, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

func structuralf(meta models.RowMeta, format string, args ...any) *StructuralError {
	return &StructuralError{
		Worksheet: meta.WorksheetName,
		Row:       meta.RowNumber,
		Reason:    fmt.Sprintf(format, args...),
	}
}

// Diagnostic is a recoverable problem tied to a cell or row.
type Diagnostic struct {
	Meta    models.CellMeta
	Message string
}

func diagnosticf(meta models.CellMeta, format string, args ...any) *Diagnostic {
	return &Diagnostic{Meta: meta, Message: fmt.Sprintf(format, args...)}
}

// Position renders the location suffix, e.g. "-> WS:People, Row:4 Col:B".
func (d Diagnostic) Position() string {
	var b strings.Builder
	b.WriteString("-> WS:")
	b.WriteString(d.Meta.WorksheetName)
	b.WriteString(", Row:")
	b.WriteString(strconv.Itoa(d.Meta.RowNumber))
	if d.Meta.ColNumber >= 0 {
		b.WriteString(" Col:")
		b.WriteString(ColumnLetters(d.Meta.ColNumber))
	}
	return b.String()
}

// String is the value embedded in a record in place of an unparseable cell.
func (d Diagnostic) String() string {
	return d.Message + " " + d.Position()
}

var embeddedErrorPattern = regexp.MustCompile(`-> WS:.*, Row:\d+( Col:[A-Z]+)?$`)

// IsEmbeddedError reports whether a parsed value is a diagnostic string that
// replaced a cell value.
func IsEmbeddedError(v any) bool {
	s, ok := v.(string)
	return ok && embeddedErrorPattern.MatchString(s)
}

// Sink receives warnings produced while parsing.
type Sink interface {
	Warn(d Diagnostic)
}

// ConsoleSink prints warnings through a leveled logger.
type ConsoleSink struct {
	// Logger defaults to internal.DefaultLogger.
	Logger *internal.Logger
}

func (s ConsoleSink) Warn(d Diagnostic) {
	logger := s.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if d.Meta.PropName != "" {
		logger.Warn("WS:%s Row:%d Col:%s prop=%s type=%s: %s",
			d.Meta.WorksheetName, d.Meta.RowNumber, ColumnLetters(d.Meta.ColNumber),
			d.Meta.PropName, d.Meta.PropType, d.Message)
		return
	}
	logger.Warn("%s", d.String())
}

// NopSink discards warnings.
type NopSink struct{}

func (NopSink) Warn(Diagnostic) {}

// RecordingSink keeps every warning it receives.
type RecordingSink struct {
	Diagnostics []Diagnostic
}

func (s *RecordingSink) Warn(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// Messages returns the rendered warnings in arrival order.
func (s *RecordingSink) Messages() []string {
	out := make([]string, len(s.Diagnostics))
	for i, d := range s.Diagnostics {
		out[i] = d.String()
	}
	return out
}

// reporter forwards warnings to a sink when enabled and always returns the
// rendered diagnostic.
type reporter struct {
	sink    Sink
	enabled bool
}

func (r reporter) warn(d Diagnostic) string {
	if r.enabled && r.sink != nil {
		r.sink.Warn(d)
	}
	return d.String()
}
