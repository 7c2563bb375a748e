package export

import (
	"encoding/json"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ytscrape/youtube"
)

// Manifest describes one export run.
type Manifest struct {
	RunID      string          `json:"run_id"`
	Channel    youtube.Channel `json:"channel"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`

	// Counts maps category name to number of records.
	Counts    map[string]int         `json:"counts"`
	ItemsSeen int                    `json:"items_seen"`
	Pages     int                    `json:"pages"`
	Skipped   []youtube.SkippedVideo `json:"skipped,omitempty"`

	// Files lists the written files relative to the output directory.
	Files []string `json:"files"`
}

// NewManifest summarizes a finished collection under a fresh run ID.
func NewManifest(ch youtube.Channel, coll *youtube.Collection, startedAt time.Time) *Manifest {
	m := &Manifest{
		RunID:     uuid.NewString(),
		Channel:   ch,
		StartedAt: startedAt.UTC(),
		Counts:    make(map[string]int, len(youtube.Categories)),
		ItemsSeen: coll.ItemsSeen,
		Pages:     coll.Pages,
		Skipped:   coll.Skipped,
	}
	for _, cat := range youtube.Categories {
		m.Counts[cat.String()] = len(coll.Bucket(cat))
	}
	return m
}

// AddFile records a written file; absolute paths under dir are made relative.
func (m *Manifest) AddFile(dir, path string) {
	if rel, err := filepath.Rel(dir, path); err == nil {
		path = rel
	}
	m.Files = append(m.Files, filepath.ToSlash(path))
}

// WriteManifest writes m as indented JSON to dir/manifest.json.
func WriteManifest(dir string, m *Manifest) (string, error) {
	path := filepath.Join(dir, ManifestFile)
	err := writeAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
	if err != nil {
		return "", &Error{Format: "manifest", Path: path, Err: err}
	}
	return path, nil
}
