// Package ingest reads the source CSV files, cleans their fields, and loads
// them into the store in one sequential pass.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record maps a column name to its raw string value for one CSV row.
type Record map[string]string

// Source iterates the header-mapped rows of one CSV file in source order.
// A Source is single-pass; reopen the file to restart.
type Source struct {
	file   string
	f      *os.File
	r      *csv.Reader
	header []string
	line   int
}

// OpenCSV opens path and consumes the header row. The caller owns Close.
func OpenCSV(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IngestionError{File: path, Err: err}
	}

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		f.Close()
		return nil, &IngestionError{File: path, Err: fmt.Errorf("reading header: %w", err)}
	}
	// Excel exports carry a utf-8 BOM on the first column name.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	return &Source{file: path, f: f, r: r, header: header, line: 1}, nil
}

// Header returns the column names in file order.
func (s *Source) Header() []string {
	return s.header
}

// Next returns the next row and its 1-based line number, or io.EOF after the
// last row. A structurally malformed row (wrong field count, bad quoting)
// surfaces as an IngestionError.
func (s *Source) Next() (Record, int, error) {
	raw, err := s.r.Read()
	if err == io.EOF {
		return nil, 0, io.EOF
	}
	s.line++
	if err != nil {
		return nil, 0, &IngestionError{File: s.file, Err: err}
	}

	rec := make(Record, len(s.header))
	for i, col := range s.header {
		if i < len(raw) {
			rec[col] = raw[i]
		}
	}
	return rec, s.line, nil
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.f.Close()
}
