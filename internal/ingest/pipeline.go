package ingest

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/config"
	"github.com/kushalreddykasarla/Teleparty-DE-Coding-Challenge/internal/store"
)

// Pipeline runs the one-shot load -> clean -> insert pass. Ingestion is all
// or nothing: any file, row, or field error aborts the run, except episode
// primary-key collisions, which the store skips by design.
type Pipeline struct {
	cfg    *config.Config
	st     *store.Store
	logger *zap.Logger
}

// NewPipeline wires the pipeline to an open store.
func NewPipeline(cfg *config.Config, st *store.Store, logger *zap.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, st: st, logger: logger}
}

// Run ingests both CSV files into the store. The seasons file is checked for
// existence only; its contents are never read.
func (p *Pipeline) Run(ctx context.Context) error {
	log := p.logger.With(zap.String("run_id", uuid.NewString()))

	if _, err := os.Stat(p.cfg.Input.SeasonsFile); err != nil {
		return &IngestionError{File: p.cfg.Input.SeasonsFile, Err: err}
	}

	if err := p.st.CreateSchema(ctx); err != nil {
		return err
	}

	shows, err := p.loadShows(p.cfg.Input.ShowsFile)
	if err != nil {
		return err
	}
	if err := p.st.InsertShows(ctx, shows); err != nil {
		return err
	}
	log.Info("ingested shows",
		zap.String("file", p.cfg.Input.ShowsFile),
		zap.Int("rows", len(shows)))

	episodes, err := p.loadEpisodes(p.cfg.Input.EpisodesFile)
	if err != nil {
		return err
	}
	inserted, err := p.st.InsertEpisodes(ctx, episodes)
	if err != nil {
		return err
	}
	if skipped := len(episodes) - inserted; skipped > 0 {
		log.Debug("skipped duplicate episode keys", zap.Int("skipped", skipped))
	}
	log.Info("ingested episodes",
		zap.String("file", p.cfg.Input.EpisodesFile),
		zap.Int("rows", len(episodes)),
		zap.Int("inserted", inserted))

	return nil
}

func (p *Pipeline) loadShows(path string) ([]store.Show, error) {
	src, err := OpenCSV(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var rows []store.Show
	for {
		rec, line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sh, ferr := BuildShow(rec)
		if ferr != nil {
			ferr.File, ferr.Line = path, line
			return nil, ferr
		}
		rows = append(rows, sh)
	}
	return rows, nil
}

func (p *Pipeline) loadEpisodes(path string) ([]store.Episode, error) {
	src, err := OpenCSV(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var rows []store.Episode
	for {
		rec, line, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ep, ferr := BuildEpisode(rec)
		if ferr != nil {
			ferr.File, ferr.Line = path, line
			return nil, ferr
		}
		rows = append(rows, ep)
	}
	return rows, nil
}
