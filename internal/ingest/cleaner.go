package ingest

import (
	"database/sql"
	"strconv"
	"strings"
)

// Field cleaners coerce raw CSV strings to their declared types before they
// reach the store. Empty input always yields an invalid (NULL) value, never
// an error; the source files leave metrics blank for some rows.

// CleanText trims whitespace; an empty result is NULL.
func CleanText(raw string) sql.NullString {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}

// CleanInt parses a plain integer field.
func CleanInt(raw string) (sql.NullInt64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

// CleanCount parses a formatted count: grouping separators are stripped
// before the integer parse, so "5,431" stores as 5431.
func CleanCount(raw string) (sql.NullInt64, error) {
	return CleanInt(strings.ReplaceAll(raw, ",", ""))
}

// CleanReal parses a floating-point field.
func CleanReal(raw string) (sql.NullFloat64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}
