package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetparse-go/pkg/sheetparse/models"
	"gopkg.in/yaml.v3"
)

func sampleResults() []*models.ParsedWorksheetResult {
	return []*models.ParsedWorksheetResult{
		{
			WorksheetName:        "People",
			DataLayout:           models.LayoutList,
			NumDataEntriesParsed: 1,
			Data:                 models.Record{"key": "alice", "age": float64(30)},
			DataTypes:            map[string]models.DataType{"key": models.TypeString, "age": models.TypeNumber},
			Meta:                 models.Record{"name": "demo"},
			MetaTypes:            map[string]models.DataType{"name": models.TypeString},
			DataStartRowNum:      4,
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, ".yaml", f.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())

	_, err = ParseFormat("toml")
	assert.EqualError(t, err, "invalid format: toml (must be json or yaml)")
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResults(), false)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"worksheetName": "People",
		"dataLayout": "dataList",
		"numDataEntriesParsed": 1,
		"data": {"key": "alice", "age": 30},
		"dataTypes": {"key": "string", "age": "number"},
		"meta": {"name": "demo"},
		"metaTypes": {"name": "string"},
		"dataStartRowNum": 4
	}]`, string(data))

	pretty, err := ToJSON(sampleResults(), true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  "))

	empty, err := ToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestToYAML(t *testing.T) {
	data, err := Encode(sampleResults(), FormatYAML, false)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "People", decoded[0]["worksheetName"])
	assert.Equal(t, "dataList", decoded[0]["dataLayout"])
	assert.Equal(t, map[string]any{"name": "demo"}, decoded[0]["meta"])

	sheet, err := EncodeSheet(sampleResults()[0], FormatYAML, false)
	require.NoError(t, err)
	assert.Contains(t, string(sheet), "worksheetName: People")
}

func TestEncodeSheetJSON(t *testing.T) {
	r := models.EmptyResult("Empty", models.LayoutFrontMatterOnly)
	data, err := EncodeSheet(r, FormatJSON, false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "meta")
	assert.Contains(t, string(data), `"data":[]`)
}
