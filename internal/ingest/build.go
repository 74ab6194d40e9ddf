package ingest

import (
	"strings"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/store"
)

// Column names as they appear in the CSV headers. The episodes file's "Code"
// column is the parent show code, not the episode's own id_code.
const (
	colCode        = "Code"
	colTitle       = "Title"
	colRating      = "Rating"
	colRatingCount = "Rating Count"
	colRank        = "Rank"
	colIDCode      = "id_code"
	colSeason      = "Season"
	colEpisode     = "Episode"
)

// BuildShow cleans one shows-file record into a store row. A value that
// cannot be coerced returns a FieldFormatError naming the column; the caller
// fills in file and line.
func BuildShow(rec Record) (store.Show, *FieldFormatError) {
	var (
		sh  store.Show
		err error
	)
	sh.Code = strings.TrimSpace(rec[colCode])
	sh.Title = CleanText(rec[colTitle])
	if sh.Rating, err = CleanReal(rec[colRating]); err != nil {
		return sh, &FieldFormatError{Field: colRating, Value: rec[colRating], Err: err}
	}
	if sh.RatingCount, err = CleanCount(rec[colRatingCount]); err != nil {
		return sh, &FieldFormatError{Field: colRatingCount, Value: rec[colRatingCount], Err: err}
	}
	if sh.Rank, err = CleanInt(rec[colRank]); err != nil {
		return sh, &FieldFormatError{Field: colRank, Value: rec[colRank], Err: err}
	}
	return sh, nil
}

// BuildEpisode cleans one episodes-file record into a store row.
func BuildEpisode(rec Record) (store.Episode, *FieldFormatError) {
	var (
		ep  store.Episode
		err error
	)
	ep.IDCode = CleanText(rec[colIDCode])
	ep.ParentCode = strings.TrimSpace(rec[colCode])
	if ep.Season, err = CleanInt(rec[colSeason]); err != nil {
		return ep, &FieldFormatError{Field: colSeason, Value: rec[colSeason], Err: err}
	}
	if ep.Episode, err = CleanInt(rec[colEpisode]); err != nil {
		return ep, &FieldFormatError{Field: colEpisode, Value: rec[colEpisode], Err: err}
	}
	if ep.Rating, err = CleanReal(rec[colRating]); err != nil {
		return ep, &FieldFormatError{Field: colRating, Value: rec[colRating], Err: err}
	}
	if ep.RatingCount, err = CleanCount(rec[colRatingCount]); err != nil {
		return ep, &FieldFormatError{Field: colRatingCount, Value: rec[colRatingCount], Err: err}
	}
	return ep, nil
}
