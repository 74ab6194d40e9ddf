package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Show is one row of the shows table.
type Show struct {
	Code        string
	Title       sql.NullString
	Rating      sql.NullFloat64
	RatingCount sql.NullInt64
	Rank        sql.NullInt64
}

// Episode is one row of the episodes table. IDCode is the source file's
// nominal identifier; it contains duplicates and is never used as a key.
type Episode struct {
	IDCode      sql.NullString
	ParentCode  string
	Season      sql.NullInt64
	Episode     sql.NullInt64
	Rating      sql.NullFloat64
	RatingCount sql.NullInt64
}

// IntegrityError reports a uniqueness violation the pipeline treats as fatal.
type IntegrityError struct {
	Table string
	Key   string
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("duplicate key %q in table %s: %v", e.Key, e.Table, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// InsertShows loads all shows in one transaction. Show codes are assumed
// unique in source, so a duplicate is fatal: the whole batch rolls back and
// an IntegrityError surfaces to the caller.
func (s *Store) InsertShows(ctx context.Context, shows []Show) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shows (code, title, rating, rating_count, rank) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare shows insert: %w", err)
	}
	defer stmt.Close()

	for _, sh := range shows {
		if _, err := stmt.ExecContext(ctx, sh.Code, sh.Title, sh.Rating, sh.RatingCount, sh.Rank); err != nil {
			if isUniqueViolation(err) {
				return &IntegrityError{Table: "shows", Key: sh.Code, Err: err}
			}
			return fmt.Errorf("failed to insert show %s: %w", sh.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit shows: %w", err)
	}
	return nil
}

// InsertEpisodes loads all episodes in one transaction using INSERT OR
// IGNORE: the source file repeats composite keys that do not represent
// distinct episodes, so collisions are skipped, not surfaced. Returns the
// number of rows actually stored.
func (s *Store) InsertEpisodes(ctx context.Context, episodes []Episode) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO episodes (id_code, parent_code, season, episode, rating, rating_count)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare episodes insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, ep := range episodes {
		res, err := stmt.ExecContext(ctx, ep.IDCode, ep.ParentCode, ep.Season, ep.Episode, ep.Rating, ep.RatingCount)
		if err != nil {
			return 0, fmt.Errorf("failed to insert episode %s S%dE%d: %w",
				ep.ParentCode, ep.Season.Int64, ep.Episode.Int64, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit episodes: %w", err)
	}
	return inserted, nil
}
