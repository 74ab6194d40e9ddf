// Package report runs the four fixed analyses against an ingested store.
// Every operation is read-only and independent of the others.
package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/store"
)

// LowRatingThreshold is the rating at or below which a show counts as
// low-rated.
const LowRatingThreshold = 5.0

// Reporter answers the four analytical questions.
type Reporter struct {
	st *store.Store
}

// New returns a Reporter over an already-ingested store.
func New(st *store.Store) *Reporter {
	return &Reporter{st: st}
}

// ShowRating is one row of the low-rated report.
type ShowRating struct {
	Code   string
	Title  string
	Rating float64
}

// SeasonedShow is a low-rated show with its distinct season count.
type SeasonedShow struct {
	ShowRating
	Seasons int
}

// Performer is one row of the top/bottom performer reports. Episodes and
// Seasons are derived counts; a show with no episodes reports both as 0.
type Performer struct {
	Code        string
	Title       string
	RatingCount int64
	Rank        int64
	Episodes    int
	Seasons     int
}

// LowRated returns every show rated at or below the threshold, ordered by
// code so the report is deterministic.
func (r *Reporter) LowRated(ctx context.Context) ([]ShowRating, error) {
	rows, err := r.st.DB().QueryContext(ctx, `
		SELECT code, title, rating
		FROM shows
		WHERE rating <= ?
		ORDER BY code`, LowRatingThreshold)
	if err != nil {
		return nil, fmt.Errorf("low-rated query: %w", err)
	}
	defer rows.Close()

	var out []ShowRating
	for rows.Next() {
		var (
			sr    ShowRating
			title sql.NullString
		)
		if err := rows.Scan(&sr.Code, &title, &sr.Rating); err != nil {
			return nil, fmt.Errorf("low-rated scan: %w", err)
		}
		sr.Title = title.String
		out = append(out, sr)
	}
	return out, rows.Err()
}

// LowRatedMultiSeason narrows LowRated to shows spanning more than one
// season. It filters the first report's rows rather than querying all shows
// again, preserving the nested question it answers.
func (r *Reporter) LowRatedMultiSeason(ctx context.Context) ([]SeasonedShow, error) {
	low, err := r.LowRated(ctx)
	if err != nil {
		return nil, err
	}

	var out []SeasonedShow
	for _, sr := range low {
		var seasons int
		err := r.st.DB().QueryRowContext(ctx,
			`SELECT COUNT(DISTINCT season) FROM episodes WHERE parent_code = ?`,
			sr.Code).Scan(&seasons)
		if err != nil {
			return nil, fmt.Errorf("season count for %s: %w", sr.Code, err)
		}
		if seasons > 1 {
			out = append(out, SeasonedShow{ShowRating: sr, Seasons: seasons})
		}
	}
	return out, nil
}

// TopPerformer returns the show(s) holding the best (minimum) rank and,
// among rank ties, the highest rating count. Remaining ties all appear.
func (r *Reporter) TopPerformer(ctx context.Context) ([]Performer, error) {
	return r.performers(ctx, `
		WITH best AS (SELECT MIN(rank) AS r FROM shows WHERE rank IS NOT NULL)
		SELECT s.code, s.title, s.rating_count, s.rank,
		       COUNT(e.parent_code), COUNT(DISTINCT e.season)
		FROM shows s
		LEFT JOIN episodes e ON e.parent_code = s.code
		WHERE s.rank = (SELECT r FROM best)
		  AND s.rating_count = (
			SELECT MAX(rating_count) FROM shows WHERE rank = (SELECT r FROM best))
		GROUP BY s.code
		ORDER BY s.code`)
}

// BottomPerformer is the mirror of TopPerformer: worst (maximum) rank, and
// among rank ties the lowest rating count.
func (r *Reporter) BottomPerformer(ctx context.Context) ([]Performer, error) {
	return r.performers(ctx, `
		WITH worst AS (SELECT MAX(rank) AS r FROM shows WHERE rank IS NOT NULL)
		SELECT s.code, s.title, s.rating_count, s.rank,
		       COUNT(e.parent_code), COUNT(DISTINCT e.season)
		FROM shows s
		LEFT JOIN episodes e ON e.parent_code = s.code
		WHERE s.rank = (SELECT r FROM worst)
		  AND s.rating_count = (
			SELECT MIN(rating_count) FROM shows WHERE rank = (SELECT r FROM worst))
		GROUP BY s.code
		ORDER BY s.code`)
}

func (r *Reporter) performers(ctx context.Context, query string) ([]Performer, error) {
	rows, err := r.st.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("performer query: %w", err)
	}
	defer rows.Close()

	var out []Performer
	for rows.Next() {
		var (
			p     Performer
			title sql.NullString
		)
		if err := rows.Scan(&p.Code, &title, &p.RatingCount, &p.Rank, &p.Episodes, &p.Seasons); err != nil {
			return nil, fmt.Errorf("performer scan: %w", err)
		}
		p.Title = title.String
		out = append(out, p)
	}
	return out, rows.Err()
}
