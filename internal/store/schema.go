package store

import (
	"context"
	"fmt"
)

// The episodes source repeats its nominal id_code, so the composite
// (parent_code, season, episode) is the real identity. id_code is kept as a
// plain column. The foreign key is declarative only; SQLite does not enforce
// it without a pragma and the reporting joins do not need it enforced.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS shows (
		code         TEXT PRIMARY KEY,
		title        TEXT,
		rating       REAL,
		rating_count INTEGER,
		rank         INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS episodes (
		id_code      TEXT,
		parent_code  TEXT,
		season       INTEGER,
		episode      INTEGER,
		rating       REAL,
		rating_count INTEGER,
		PRIMARY KEY (parent_code, season, episode),
		FOREIGN KEY (parent_code) REFERENCES shows (code)
	);`,
}

// CreateSchema declares both tables. Safe to call repeatedly.
func (s *Store) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
