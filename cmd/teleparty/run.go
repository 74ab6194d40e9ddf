package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/cmd/teleparty/ui"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/ingest"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/report"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/store"
)

// runIngest executes the write phase. The database is recreated from scratch
// on every run; there is no incremental mode.
func runIngest(cmd *cobra.Command) error {
	if err := os.Remove(cfg.Store.DatabasePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale database %s: %w", cfg.Store.DatabasePath, err)
	}

	st, err := store.Open(cfg.Store.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("starting ingestion", zap.String("database", cfg.Store.DatabasePath))
	return ingest.NewPipeline(cfg, st, logger).Run(cmd.Context())
}

// runReport executes the read phase against an already-ingested database.
func runReport(cmd *cobra.Command) error {
	if _, err := os.Stat(cfg.Store.DatabasePath); err != nil {
		return fmt.Errorf("database %s not found, run ingest first: %w", cfg.Store.DatabasePath, err)
	}

	st, err := store.Open(cfg.Store.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	return printReport(cmd.Context(), cmd.OutOrStdout(), ui.DefaultStyles(), report.New(st))
}
