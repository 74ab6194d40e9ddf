package report

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/store"
)

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func nullText(v string) sql.NullString {
	return sql.NullString{String: v, Valid: true}
}

func show(code, title string, rating float64, count, rank int64) store.Show {
	return store.Show{
		Code:        code,
		Title:       nullText(title),
		Rating:      nullFloat(rating),
		RatingCount: nullInt(count),
		Rank:        nullInt(rank),
	}
}

func episode(parent string, season, ep int64) store.Episode {
	return store.Episode{ParentCode: parent, Season: nullInt(season), Episode: nullInt(ep)}
}

func seedReporter(t *testing.T, shows []store.Show, episodes []store.Episode) *Reporter {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "report.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.CreateSchema(ctx))
	require.NoError(t, st.InsertShows(ctx, shows))
	_, err = st.InsertEpisodes(ctx, episodes)
	require.NoError(t, err)

	return New(st)
}

func TestLowRated(t *testing.T) {
	r := seedReporter(t, []store.Show{
		show("S3", "Meh Show", 5.0, 10, 3), // boundary: 5.0 counts
		show("S1", "Bad Show", 2.1, 10, 2),
		show("S2", "Great Show", 9.0, 10, 1),
	}, nil)

	got, err := r.LowRated(context.Background())
	require.NoError(t, err)

	want := []ShowRating{
		{Code: "S1", Title: "Bad Show", Rating: 2.1},
		{Code: "S3", Title: "Meh Show", Rating: 5.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LowRated mismatch (-want +got):\n%s", diff)
	}
}

func TestLowRatedMultiSeason_SubsetOfLowRated(t *testing.T) {
	shows := []store.Show{
		show("S1", "Bad Long Show", 3.0, 10, 1),  // low, 2 seasons -> in both
		show("S2", "Bad Short Show", 3.0, 10, 2), // low, 1 season -> only in (1)
		show("S3", "Good Long Show", 8.0, 10, 3), // 2 seasons but not low
	}
	episodes := []store.Episode{
		episode("S1", 1, 1), episode("S1", 2, 1),
		episode("S2", 1, 1), episode("S2", 1, 2),
		episode("S3", 1, 1), episode("S3", 2, 1),
	}
	r := seedReporter(t, shows, episodes)
	ctx := context.Background()

	low, err := r.LowRated(ctx)
	require.NoError(t, err)
	multi, err := r.LowRatedMultiSeason(ctx)
	require.NoError(t, err)

	require.Len(t, multi, 1)
	require.Equal(t, "S1", multi[0].Code)
	require.Equal(t, 2, multi[0].Seasons)

	// Every multi-season row also appears in the low-rated report.
	lowCodes := make(map[string]bool, len(low))
	for _, sr := range low {
		lowCodes[sr.Code] = true
	}
	for _, ss := range multi {
		require.True(t, lowCodes[ss.Code], "row %s missing from LowRated", ss.Code)
		require.Greater(t, ss.Seasons, 1)
	}
}

func TestTopPerformer(t *testing.T) {
	shows := []store.Show{
		show("S1", "Champion", 9.0, 5000, 1),
		show("S2", "Also Rank One", 8.0, 400, 1), // rank tie, lower count
		show("S3", "High Count Low Rank", 7.0, 9999, 4),
	}
	episodes := []store.Episode{
		episode("S1", 1, 1), episode("S1", 1, 2), episode("S1", 2, 1),
	}
	r := seedReporter(t, shows, episodes)

	got, err := r.TopPerformer(context.Background())
	require.NoError(t, err)

	want := []Performer{
		{Code: "S1", Title: "Champion", RatingCount: 5000, Rank: 1, Episodes: 3, Seasons: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopPerformer mismatch (-want +got):\n%s", diff)
	}
}

func TestTopPerformer_FullTieReturnsAll(t *testing.T) {
	shows := []store.Show{
		show("S1", "Twin A", 9.0, 5000, 1),
		show("S2", "Twin B", 8.5, 5000, 1), // ties on rank and rating count
		show("S3", "Other", 7.0, 100, 2),
	}
	r := seedReporter(t, shows, nil)

	got, err := r.TopPerformer(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	require.Equal(t, "S1", got[0].Code)
	require.Equal(t, "S2", got[1].Code)
}

func TestTopPerformer_NoEpisodesCountsZero(t *testing.T) {
	r := seedReporter(t, []store.Show{show("S1", "Lonely", 6.0, 100, 1)}, nil)

	got, err := r.TopPerformer(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 0, got[0].Episodes)
	require.Equal(t, 0, got[0].Seasons)
}

func TestBottomPerformer(t *testing.T) {
	shows := []store.Show{
		show("S1", "Champion", 9.0, 5000, 1),
		show("S2", "Struggler", 4.0, 50, 9),
		show("S3", "Also Rank Nine", 4.5, 800, 9), // rank tie, higher count
	}
	episodes := []store.Episode{episode("S2", 1, 1)}
	r := seedReporter(t, shows, episodes)

	got, err := r.BottomPerformer(context.Background())
	require.NoError(t, err)

	want := []Performer{
		{Code: "S2", Title: "Struggler", RatingCount: 50, Rank: 9, Episodes: 1, Seasons: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BottomPerformer mismatch (-want +got):\n%s", diff)
	}
}

func TestPerformers_NullRankExcluded(t *testing.T) {
	shows := []store.Show{
		show("S1", "Ranked", 6.0, 100, 3),
		{Code: "S2", Title: nullText("Unranked"), Rating: nullFloat(6.0), RatingCount: nullInt(999)},
	}
	r := seedReporter(t, shows, nil)
	ctx := context.Background()

	top, err := r.TopPerformer(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, "S1", top[0].Code)

	bottom, err := r.BottomPerformer(ctx)
	require.NoError(t, err)
	require.Len(t, bottom, 1)
	require.Equal(t, "S1", bottom[0].Code)
}

func TestReports_EmptyStore(t *testing.T) {
	r := seedReporter(t, nil, nil)
	ctx := context.Background()

	low, err := r.LowRated(ctx)
	require.NoError(t, err)
	require.Empty(t, low)

	multi, err := r.LowRatedMultiSeason(ctx)
	require.NoError(t, err)
	require.Empty(t, multi)

	top, err := r.TopPerformer(ctx)
	require.NoError(t, err)
	require.Empty(t, top)

	bottom, err := r.BottomPerformer(ctx)
	require.NoError(t, err)
	require.Empty(t, bottom)
}
