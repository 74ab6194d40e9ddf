package ingest

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestOpenCSV_MissingFile(t *testing.T) {
	_, err := OpenCSV(filepath.Join(t.TempDir(), "absent.csv"))
	var ierr *IngestionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected IngestionError, got %v", err)
	}
}

func TestSource_HeaderMappedRows(t *testing.T) {
	path := writeFile(t, "shows.csv", "Code,Title,Rating\nS1,The Pit,4.5\nS2,Better Show,8.9\n")

	src, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	defer src.Close()

	rec, line, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if line != 2 {
		t.Errorf("first data row should be line 2, got %d", line)
	}
	if rec["Code"] != "S1" || rec["Title"] != "The Pit" || rec["Rating"] != "4.5" {
		t.Errorf("unexpected record: %v", rec)
	}

	if _, _, err := src.Next(); err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if _, _, err := src.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}

func TestOpenCSV_StripsBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", "\xef\xbb\xbfCode,Title\nS1,X\n")

	src, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	defer src.Close()

	if got := src.Header()[0]; got != "Code" {
		t.Errorf("BOM not stripped from header: %q", got)
	}
	rec, _, err := src.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if rec["Code"] != "S1" {
		t.Errorf("record not keyed by clean header: %v", rec)
	}
}

func TestSource_RaggedRowIsIngestionError(t *testing.T) {
	path := writeFile(t, "ragged.csv", "Code,Title,Rating\nS1,only-two\n")

	src, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	defer src.Close()

	_, _, err = src.Next()
	var ierr *IngestionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected IngestionError for ragged row, got %v", err)
	}
}

func TestSource_EmptyFileFailsOnHeader(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := OpenCSV(path)
	var ierr *IngestionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected IngestionError for headerless file, got %v", err)
	}
}
