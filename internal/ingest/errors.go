package ingest

import "fmt"

// IngestionError reports a source file that is missing, unreadable, or
// structurally malformed.
type IngestionError struct {
	File string
	Err  error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed for %s: %v", e.File, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// FieldFormatError reports a value that could not be coerced to its declared
// type. File and Line are filled in by the pipeline once it knows them.
type FieldFormatError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("%s line %d: field %q: cannot parse %q: %v",
		e.File, e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldFormatError) Unwrap() error { return e.Err }
