package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVerbNotFound   = errors.New("verb not found")
	ErrDuplicateVerb  = errors.New("duplicate verb")
	ErrUploadMissing  = errors.New("file is required")
	ErrUploadTooLarge = errors.New("file is too large")
	ErrForeignTx      = errors.New("transaction was not begun by this store")
)

// UploadError reports that the raw upload could not be acquired.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed CSV structure. Line is the 1-based line in the
// decoded text.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a row or request that failed a validation rule.
// Row is the 1-based data row of an import, or 0 outside of imports.
type ValidationError struct {
	Row   int
	Field string
	Tag   string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: field %q failed %q validation", e.Row, e.Field, e.Tag)
	}
	return fmt.Sprintf("field %q failed %q validation", e.Field, e.Tag)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
