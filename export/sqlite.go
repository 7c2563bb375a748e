package export

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"ytscrape/youtube"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	channel_id    TEXT NOT NULL,
	channel_title TEXT NOT NULL,
	playlist_id   TEXT NOT NULL,
	started_at    TEXT NOT NULL,
	finished_at   TEXT NOT NULL,
	items_seen    INTEGER NOT NULL,
	skipped       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS videos (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	video_id    TEXT NOT NULL,
	category    TEXT NOT NULL,
	position    INTEGER NOT NULL,
	url         TEXT NOT NULL,
	title       TEXT NOT NULL,
	thumbnail   TEXT NOT NULL,
	upload_date TEXT NOT NULL,
	upload_time TEXT NOT NULL,
	views       INTEGER NOT NULL,
	comments    INTEGER NOT NULL,
	PRIMARY KEY (run_id, video_id)
);
CREATE INDEX IF NOT EXISTS idx_videos_video_id ON videos(video_id);
`

// Catalog stores every run and its records in a SQLite database.
type Catalog struct {
	db   *sql.DB
	path string
}

// OpenCatalog opens (creating if needed) the catalog database at path.
func OpenCatalog(ctx context.Context, path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &Error{Format: "sqlite", Path: path, Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &Error{Format: "sqlite", Path: path, Err: err}
	}
	// one writer; keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, catalogSchema); err != nil {
		db.Close()
		return nil, &Error{Format: "sqlite", Path: path, Err: fmt.Errorf("create schema: %w", err)}
	}
	return &Catalog{db: db, path: path}, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// SaveRun inserts the run and all its records in one transaction.
func (c *Catalog) SaveRun(ctx context.Context, m *Manifest, coll *youtube.Collection) error {
	if err := c.saveRun(ctx, m, coll); err != nil {
		return &Error{Format: "sqlite", Path: c.path, Err: err}
	}
	return nil
}

func (c *Catalog) saveRun(ctx context.Context, m *Manifest, coll *youtube.Collection) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, channel_id, channel_title, playlist_id, started_at, finished_at, items_seen, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.Channel.ID, m.Channel.Title, m.Channel.UploadsPlaylistID,
		m.StartedAt.Format(time.RFC3339), m.FinishedAt.Format(time.RFC3339),
		coll.ItemsSeen, len(coll.Skipped),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO videos (run_id, video_id, category, position, url, title, thumbnail, upload_date, upload_time, views, comments)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, cat := range youtube.Categories {
		for i, r := range coll.Bucket(cat) {
			_, err := stmt.ExecContext(ctx,
				m.RunID, r.ID, cat.String(), i,
				r.URL, r.Title, r.Thumbnail, r.UploadDate, r.UploadTime,
				clampInt64(r.Views), clampInt64(r.Comments),
			)
			if err != nil {
				return fmt.Errorf("insert video %s: %w", r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CountVideos returns the number of records stored for a run and category.
func (c *Catalog) CountVideos(ctx context.Context, runID string, cat youtube.Category) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM videos WHERE run_id = ? AND category = ?`,
		runID, cat.String(),
	).Scan(&n)
	if err != nil {
		return 0, &Error{Format: "sqlite", Path: c.path, Err: err}
	}
	return n, nil
}

// sqlite integers are signed 64-bit
func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
