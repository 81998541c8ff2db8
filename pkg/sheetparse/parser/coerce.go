package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
)

// Sentinel cell values.
const (
	// SkipSentinel omits the property from the record.
	SkipSentinel = "_skip_"
	// AutoSentinel is replaced by a generated v4 UUID in uuid cells.
	AutoSentinel = "_auto_"
)

// DefaultListDelimiter separates values in a row-value-list cell.
const DefaultListDelimiter = ","

// Coercer converts raw cells to values of a declared type.
type Coercer struct {
	layout        models.DataLayout
	listDelimiter string
	newUUID       func() string
}

// NewCoercer returns a coercer for a worksheet with the given layout.
// List types are accepted only for models.LayoutList.
func NewCoercer(layout models.DataLayout, listDelimiter string) *Coercer {
	if listDelimiter == "" {
		listDelimiter = DefaultListDelimiter
	}
	return &Coercer{
		layout:        layout,
		listDelimiter: listDelimiter,
		newUUID:       uuid.NewString,
	}
}

// Coerce returns the parsed value of raw, nil for an empty cell, or a
// diagnostic when the cell cannot be read as t.
func (c *Coercer) Coerce(t models.DataType, raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if t.IsList() {
		if c.layout != models.LayoutList {
			return nil, diagnosticf(meta, "Row-value-list type %s is only valid in %s layout", t, models.LayoutList)
		}
		return c.coerceList(t.Base(), raw, meta)
	}
	return c.coerceScalar(t, raw, meta)
}

func (c *Coercer) coerceScalar(t models.DataType, raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if raw.Kind == KindError {
		return nil, diagnosticf(meta, "Cell error: %s", raw.Text)
	}
	if raw.IsNil() {
		return nil, nil
	}

	switch t {
	case models.TypeString:
		return raw.String(), nil
	case models.TypeNumber:
		return toNumber(raw, meta)
	case models.TypeBoolean:
		return toBoolean(raw, meta)
	case models.TypeBigInt:
		return toBigInt(raw, meta)
	case models.TypeDate:
		if raw.Kind != KindDate {
			return nil, diagnosticf(meta, "Invalid date: %s", raw)
		}
		return raw.Date, nil
	case models.TypePassword:
		return toPassword(raw, meta)
	case models.TypeJSON:
		return toJSON(raw, meta)
	case models.TypeUUID:
		return c.toUUID(raw, meta)
	}
	return nil, diagnosticf(meta, "Unsupported data type: %s", t)
}

func (c *Coercer) coerceList(base models.DataType, raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if raw.Kind != KindText {
		v, d := c.coerceScalar(base, raw, meta)
		if d != nil || v == nil {
			return nil, d
		}
		return []any{v}, nil
	}

	parts := strings.Split(raw.Text, c.listDelimiter)
	values := make([]any, 0, len(parts))
	for i, part := range parts {
		v, d := c.coerceScalar(base, TextCell(strings.TrimSpace(part)), meta)
		if d != nil {
			d.Message = d.Message + " (list item " + strconv.Itoa(i+1) + ")"
			return nil, d
		}
		values = append(values, v)
	}
	return values, nil
}

func toNumber(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	var f float64
	switch raw.Kind {
	case KindNumber:
		f = raw.Number
	case KindBool:
		if raw.Bool {
			f = 1
		}
	case KindDate:
		f = float64(raw.Date.UnixMilli())
	default:
		parsed, ok := parseFloat(raw.Text)
		if !ok {
			return nil, diagnosticf(meta, "Invalid number: %s", raw)
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, diagnosticf(meta, "Invalid number: %s", raw)
	}
	return f, nil
}

func toBoolean(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if raw.Kind == KindBool {
		return raw.Bool, nil
	}
	if raw.Kind == KindText {
		switch strings.ToLower(strings.TrimSpace(raw.Text)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return nil, diagnosticf(meta, "Invalid boolean value: %s", raw)
}

func toBigInt(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	switch raw.Kind {
	case KindBool:
		if raw.Bool {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	case KindNumber:
		if n, ok := new(big.Int).SetString(raw.Text, 10); ok {
			return n, nil
		}
		if !math.IsInf(raw.Number, 0) && raw.Number == math.Trunc(raw.Number) {
			n, _ := big.NewFloat(raw.Number).Int(nil)
			return n, nil
		}
	case KindText:
		if n, ok := parseBigInt(raw.Text); ok {
			return n, nil
		}
	}
	return nil, diagnosticf(meta, "Invalid bigint: %s", raw)
}

// parseBigInt reads decimal integer text, leading zeros included. Hex, octal
// and binary are accepted only with an explicit 0x, 0o or 0b prefix.
func parseBigInt(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "_") {
		return nil, false
	}
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	base := 10
	if len(digits) > 2 && digits[0] == '0' && strings.ContainsRune("xXoObB", rune(digits[1])) {
		base = 0
	}
	return new(big.Int).SetString(s, base)
}

func toPassword(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if raw.Kind != KindText && raw.Kind != KindNumber {
		return nil, diagnosticf(meta, "Invalid password: expected text or a number, got %s", raw.Kind)
	}
	sum := sha256.Sum256([]byte(raw.String()))
	return hex.EncodeToString(sum[:]), nil
}

func toJSON(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	if (raw.Kind == KindNumber && raw.Number == 0) || (raw.Kind == KindBool && !raw.Bool) {
		return nil, diagnosticf(meta, "Cell had no JSON content")
	}
	var v any
	if err := json.Unmarshal([]byte(raw.String()), &v); err != nil {
		return nil, diagnosticf(meta, "Invalid JSON: %v", err)
	}
	return v, nil
}

func (c *Coercer) toUUID(raw Cell, meta models.CellMeta) (any, *Diagnostic) {
	text := raw.String()
	if strings.Contains(text, AutoSentinel) {
		parts := strings.Split(text, AutoSentinel)
		var b strings.Builder
		for i, part := range parts {
			if i > 0 {
				b.WriteString(c.newUUID())
			}
			b.WriteString(part)
		}
		return b.String(), nil
	}
	if !IsUUIDv4(text) {
		return nil, diagnosticf(meta, "Invalid UUID: %s", text)
	}
	return text, nil
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsUUIDv4 reports whether s is a canonical 36-character RFC 4122 version 4 UUID.
func IsUUIDv4(s string) bool {
	if len(s) != 36 {
		return false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.Variant() == uuid.RFC4122
}
