package sheetparse

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ParseError represents an error while parsing one worksheet.
type ParseError struct {
	SheetName string
	Component string // "worksheet", "callback"
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(sheetName, component string, err error) *ParseError {
	return &ParseError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
