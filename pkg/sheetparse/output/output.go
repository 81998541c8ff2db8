// Package output serializes parsed worksheets.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be json or yaml)", s)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// ToJSON serializes all worksheet results as a JSON array.
func ToJSON(results []*models.ParsedWorksheetResult, pretty bool) ([]byte, error) {
	if results == nil {
		results = []*models.ParsedWorksheetResult{}
	}
	return marshalJSON(results, pretty)
}

// SheetToJSON serializes a single worksheet result.
func SheetToJSON(result *models.ParsedWorksheetResult, pretty bool) ([]byte, error) {
	return marshalJSON(result, pretty)
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes all worksheet results as a YAML sequence.
func ToYAML(results []*models.ParsedWorksheetResult) ([]byte, error) {
	if results == nil {
		results = []*models.ParsedWorksheetResult{}
	}
	return yaml.Marshal(results)
}

// SheetToYAML serializes a single worksheet result.
func SheetToYAML(result *models.ParsedWorksheetResult) ([]byte, error) {
	return yaml.Marshal(result)
}

// Encode serializes results in format f.
func Encode(results []*models.ParsedWorksheetResult, f Format, pretty bool) ([]byte, error) {
	if f == FormatYAML {
		return ToYAML(results)
	}
	return ToJSON(results, pretty)
}

// EncodeSheet serializes one result in format f.
func EncodeSheet(result *models.ParsedWorksheetResult, f Format, pretty bool) ([]byte, error) {
	if f == FormatYAML {
		return SheetToYAML(result)
	}
	return SheetToJSON(result, pretty)
}
