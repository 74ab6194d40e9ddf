package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/cmd/teleparty/ui"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/report"
)

// Section wording follows the assignment questions; the four sections
// always print in this order.
func printReport(ctx context.Context, w io.Writer, styles ui.Styles, r *report.Reporter) error {
	fmt.Fprintf(w, "\n%s\n\n", styles.Bold.Render("--- Generating Reports ---"))

	low, err := r.LowRated(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w, renderLowRated(styles, low))

	multi, err := r.LowRatedMultiSeason(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w, renderMultiSeason(styles, multi))

	top, err := r.TopPerformer(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w, renderPerformers(styles,
		"3. Show(s) with the highest rating count and lowest rank:", top))

	bottom, err := r.BottomPerformer(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(w, renderPerformers(styles,
		"4. Show(s) with the lowest rating count and highest rank:", bottom))

	return nil
}

func renderLowRated(styles ui.Styles, rows []report.ShowRating) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("1. Shows with a rating less than or equal to 5:"))
	sb.WriteString("\n")
	if len(rows) == 0 {
		sb.WriteString("  No shows found with a rating of 5 or less.\n")
	}
	for _, sr := range rows {
		sb.WriteString(fmt.Sprintf("  - %s (Rating: %s)\n", sr.Title, formatRating(sr.Rating)))
	}
	sb.WriteString(separator(styles))
	return sb.String()
}

func renderMultiSeason(styles ui.Styles, rows []report.SeasonedShow) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("2. Of the shows above, which have more than 1 season:"))
	sb.WriteString("\n")
	if len(rows) == 0 {
		sb.WriteString("  No shows with a low rating also have more than 1 season.\n")
	}
	for _, ss := range rows {
		sb.WriteString(fmt.Sprintf("  - %s (%d seasons)\n", ss.Title, ss.Seasons))
	}
	sb.WriteString(separator(styles))
	return sb.String()
}

func renderPerformers(styles ui.Styles, title string, rows []report.Performer) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n")
	if len(rows) == 0 {
		sb.WriteString("  No show qualifies; every show is missing a rank or rating count.\n")
		sb.WriteString(separator(styles))
		return sb.String()
	}

	table := ui.NewTable("Show", "Rating Count", "Rank", "Total Episodes", "Total Seasons")
	for _, p := range rows {
		table.AddRow(p.Title,
			strconv.FormatInt(p.RatingCount, 10),
			strconv.FormatInt(p.Rank, 10),
			strconv.Itoa(p.Episodes),
			strconv.Itoa(p.Seasons))
	}
	sb.WriteString(table.View(styles))
	sb.WriteString(separator(styles))
	return sb.String()
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func separator(styles ui.Styles) string {
	return styles.Muted.Render(strings.Repeat("-", 30)) + "\n"
}
