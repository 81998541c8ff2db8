// Package models defines data structures produced by worksheet parsing.
package models

import (
	"fmt"
	"strings"
)

// DataType is a declared property type from a worksheet's type row.
type DataType string

const (
	TypeString   DataType = "string"
	TypeNumber   DataType = "number"
	TypeBoolean  DataType = "boolean"
	TypeBigInt   DataType = "bigint"
	TypeDate     DataType = "date"
	TypePassword DataType = "password"
	TypeJSON     DataType = "json"
	TypeUUID     DataType = "uuid"
)

// ListSuffix marks a row-value-list variant of a base type, e.g. "string:list".
const ListSuffix = ":list"

// BaseTypes lists the scalar vocabulary in declaration order.
var BaseTypes = []DataType{
	TypeString,
	TypeNumber,
	TypeBoolean,
	TypeBigInt,
	TypeDate,
	TypePassword,
	TypeJSON,
	TypeUUID,
}

var baseTypeSet = func() map[DataType]bool {
	m := make(map[DataType]bool, len(BaseTypes))
	for _, t := range BaseTypes {
		m[t] = true
	}
	return m
}()

// ParseDataType validates a type token against the closed vocabulary.
// Surrounding whitespace is ignored; matching is case-sensitive.
func ParseDataType(token string) (DataType, error) {
	t := DataType(strings.TrimSpace(token))
	if !t.Valid() {
		return "", fmt.Errorf("invalid data type %q", token)
	}
	return t, nil
}

// Valid reports whether t is a base type or a list variant of one.
func (t DataType) Valid() bool {
	return baseTypeSet[t.Base()]
}

// IsList reports whether t is a row-value-list type.
func (t DataType) IsList() bool {
	return strings.HasSuffix(string(t), ListSuffix)
}

// Base returns the scalar type, stripping any list suffix.
func (t DataType) Base() DataType {
	return DataType(strings.TrimSuffix(string(t), ListSuffix))
}

// ListOf returns the row-value-list variant of t.
func (t DataType) ListOf() DataType {
	if t.IsList() {
		return t
	}
	return t + ListSuffix
}

func (t DataType) String() string {
	return string(t)
}
