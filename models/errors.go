package models

import (
	"fmt"
	"strings"
)

// SchemaError reports required dataset columns that are absent.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a dataset value that could not be parsed.
// Row is 1-indexed and counts the header line.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: cannot parse %s value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownCodeError reports a season or weather code outside 1..4.
type UnknownCodeError struct {
	Kind string
	Code int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Kind, e.Code)
}

// EmptyInputError reports a statistic requested over an empty view.
type EmptyInputError struct {
	Statistic string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot compute %s over an empty view", e.Statistic)
}
