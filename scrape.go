package ytscrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ytscrape/config"
	"ytscrape/export"
	"ytscrape/youtube"
)

// Scraper exports every upload of one channel. It carries its settings
// explicitly; nothing is read from package-level state.
type Scraper struct {
	cfg    *config.Config
	source youtube.Source
	logger *slog.Logger
}

// Result describes a finished run.
type Result struct {
	Channel    youtube.Channel
	Dir        string
	Collection *youtube.Collection
	Manifest   *export.Manifest
}

// New creates a Scraper. A nil cfg uses config.DefaultConfig(); a nil logger
// uses slog.Default().
func New(cfg *config.Config, source youtube.Source, logger *slog.Logger) *Scraper {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{cfg: cfg, source: source, logger: logger}
}

// Channel resolves the configured channel reference.
func (s *Scraper) Channel(ctx context.Context) (*youtube.Channel, error) {
	ch, err := s.source.Channel(ctx, s.cfg.Channel)
	if err != nil {
		return nil, fmt.Errorf("resolve channel %q: %w", s.cfg.Channel, err)
	}
	s.logger.Info("resolved channel",
		"channel_id", ch.ID,
		"title", ch.Title,
		"uploads", ch.UploadsPlaylistID,
	)
	return ch, nil
}

// Collect walks the channel's uploads playlist. On error nothing is returned.
func (s *Scraper) Collect(ctx context.Context, ch *youtube.Channel) (*youtube.Collection, error) {
	w := youtube.NewWalker(s.source, youtube.WalkerConfig{
		PageSize:  s.cfg.PageSize,
		PageDelay: s.cfg.PageDelay,
		Logger:    s.logger,
	})

	start := time.Now()
	coll, err := w.Walk(ctx, ch.UploadsPlaylistID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("collected uploads",
		"channel", ch.Title,
		"pages", coll.Pages,
		"items", coll.ItemsSeen,
		"short", len(coll.Short),
		"regular", len(coll.Regular),
		"skipped", len(coll.Skipped),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return coll, nil
}

// Export writes coll into dir: both text files, both spreadsheets, the
// SQLite catalog when configured and finally manifest.json when enabled.
// The first failing writer aborts the export.
func (s *Scraper) Export(ctx context.Context, dir string, ch *youtube.Channel, coll *youtube.Collection, startedAt time.Time) (*export.Manifest, error) {
	m := export.NewManifest(*ch, coll, startedAt)

	for _, cat := range []youtube.Category{youtube.CategoryRegular, youtube.CategoryShort} {
		path, err := export.WriteText(dir, export.TextFileName(cat), coll.Bucket(cat))
		if err != nil {
			return nil, err
		}
		m.AddFile(dir, path)
		s.logger.Debug("wrote text export", "path", path, "records", len(coll.Bucket(cat)))
	}

	paths, err := export.WriteSpreadsheets(dir, coll)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		m.AddFile(dir, path)
		s.logger.Debug("wrote spreadsheet", "path", path)
	}

	m.FinishedAt = time.Now().UTC()

	if s.cfg.SQLitePath != "" {
		if err := s.saveCatalog(ctx, m, coll); err != nil {
			return nil, err
		}
	}

	if s.cfg.WriteManifest {
		path, err := export.WriteManifest(dir, m)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("wrote manifest", "path", path, "run_id", m.RunID)
	}

	return m, nil
}

func (s *Scraper) saveCatalog(ctx context.Context, m *export.Manifest, coll *youtube.Collection) error {
	catalog, err := export.OpenCatalog(ctx, s.cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if err := catalog.SaveRun(ctx, m, coll); err != nil {
		return err
	}
	s.logger.Info("saved run to catalog", "path", s.cfg.SQLitePath, "run_id", m.RunID)
	return nil
}

// Run collects the channel's uploads and exports them into dir. Exports start
// only after the walk completed, so a failed walk writes no files.
func (s *Scraper) Run(ctx context.Context, ch *youtube.Channel, dir string) (*Result, error) {
	startedAt := time.Now()

	coll, err := s.Collect(ctx, ch)
	if err != nil {
		return nil, err
	}

	m, err := s.Export(ctx, dir, ch, coll, startedAt)
	if err != nil {
		return nil, err
	}

	return &Result{
		Channel:    *ch,
		Dir:        dir,
		Collection: coll,
		Manifest:   m,
	}, nil
}
