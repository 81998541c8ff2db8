package models

// DataLayout describes how a worksheet's data rows are shaped.
type DataLayout string

const (
	// LayoutTable holds many rows, parsed into a slice of records.
	LayoutTable DataLayout = "dataTable"
	// LayoutList holds exactly one data row, parsed into a single record.
	LayoutList DataLayout = "dataList"
	// LayoutFrontMatterOnly has no data rows below the header pair.
	LayoutFrontMatterOnly DataLayout = "frontMatterOnly"
)

// Record maps property names to parsed values. A nil value means the cell was
// legitimately empty; a property omitted by the skip sentinel is absent.
type Record map[string]any

// ParsedWorksheetResult is the parsed form of a single worksheet.
type ParsedWorksheetResult struct {
	// WorksheetName is the sheet name.
	WorksheetName string `json:"worksheetName" yaml:"worksheetName"`
	// DataLayout is the detected layout.
	DataLayout DataLayout `json:"dataLayout" yaml:"dataLayout"`
	// NumDataEntriesParsed counts the records actually built.
	NumDataEntriesParsed int `json:"numDataEntriesParsed" yaml:"numDataEntriesParsed"`
	// Data is []Record for the table layout (and for empty results) or a
	// single Record for the list layout.
	Data any `json:"data" yaml:"data"`
	// DataTypes maps each property name from the header pair to its type.
	DataTypes map[string]DataType `json:"dataTypes" yaml:"dataTypes"`
	// Meta holds front matter values (nil when the sheet has none).
	Meta Record `json:"meta,omitempty" yaml:"meta,omitempty"`
	// MetaTypes holds front matter types; present exactly when Meta is.
	MetaTypes map[string]DataType `json:"metaTypes,omitempty" yaml:"metaTypes,omitempty"`
	// DataStartRowNum is the 1-based row of the property-name row.
	DataStartRowNum int `json:"dataStartRowNum" yaml:"dataStartRowNum"`
}

// Records returns the table records, or a one-element slice for the list
// layout. It never returns nil.
func (r *ParsedWorksheetResult) Records() []Record {
	switch d := r.Data.(type) {
	case []Record:
		if d == nil {
			return []Record{}
		}
		return d
	case Record:
		return []Record{d}
	default:
		return []Record{}
	}
}

// Entry returns the single record of a list-layout worksheet.
func (r *ParsedWorksheetResult) Entry() (Record, bool) {
	rec, ok := r.Data.(Record)
	return rec, ok
}

// HasMeta reports whether the worksheet carried front matter.
func (r *ParsedWorksheetResult) HasMeta() bool {
	return r.Meta != nil
}

// EmptyResult is the result returned when a worksheet is abandoned after a
// recoverable header problem.
func EmptyResult(worksheet string, layout DataLayout) *ParsedWorksheetResult {
	return &ParsedWorksheetResult{
		WorksheetName: worksheet,
		DataLayout:    layout,
		Data:          []Record{},
		DataTypes:     map[string]DataType{},
	}
}
