package store

import (
	"context"
	"fmt"
)

// CountShows returns the number of stored shows.
func (s *Store) CountShows(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM shows")
}

// CountEpisodes returns the number of stored episodes.
func (s *Store) CountEpisodes(ctx context.Context) (int, error) {
	return s.countRows(ctx, "SELECT COUNT(*) FROM episodes")
}

func (s *Store) countRows(ctx context.Context, query string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
