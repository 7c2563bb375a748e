package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
	ytapi "google.golang.org/api/youtube/v3"
)

// DefaultPageDelay is the pause enforced between playlist page fetches.
const DefaultPageDelay = 1 * time.Second

// WalkerConfig configures a Walker.
type WalkerConfig struct {
	// PageSize is the number of playlist items requested per page (1..MaxPageSize).
	// Zero means MaxPageSize.
	PageSize int
	// PageDelay is the minimum spacing between page fetches. Zero disables pacing.
	PageDelay time.Duration
	// Logger receives per-video warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// Walker traverses an uploads playlist and buckets its videos by category.
// A Walker is not safe for concurrent use.
type Walker struct {
	source   Source
	pageSize int
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewWalker creates a Walker reading from source.
func NewWalker(source Source, cfg WalkerConfig) *Walker {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	limit := rate.Inf
	if cfg.PageDelay > 0 {
		limit = rate.Every(cfg.PageDelay)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Walker{
		source:   source,
		pageSize: pageSize,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
}

// WalkError reports the page on which a traversal failed.
type WalkError struct {
	PlaylistID string
	// Page is the 1-based page number being fetched.
	Page int
	Err  error
}

// Error returns a string representation of the walk error.
func (e *WalkError) Error() string {
	return fmt.Sprintf("youtube: walk playlist %s page %d: %v", e.PlaylistID, e.Page, e.Err)
}

// Unwrap returns the underlying error.
func (e *WalkError) Unwrap() error { return e.Err }

// Walk fetches every page of the playlist and returns the finalized collection.
//
// Each page costs one playlistItems.list call and, when the page is not empty,
// one batched videos.list call. Any source error aborts the walk; no partial
// collection is returned.
func (w *Walker) Walk(ctx context.Context, playlistID string) (*Collection, error) {
	coll := &Collection{}
	seen := make(map[string]bool)
	pageToken := ""

	for page := 1; ; page++ {
		if err := w.limiter.Wait(ctx); err != nil {
			return nil, &WalkError{PlaylistID: playlistID, Page: page, Err: err}
		}

		resp, err := w.source.PlaylistPage(ctx, playlistID, w.pageSize, pageToken)
		if err != nil {
			return nil, &WalkError{PlaylistID: playlistID, Page: page, Err: err}
		}
		coll.Pages++
		coll.ItemsSeen += len(resp.VideoIDs) + resp.Missing
		for i := 0; i < resp.Missing; i++ {
			w.skip(coll, "", "playlist item without video id")
		}

		if err := w.processPage(ctx, coll, seen, resp.VideoIDs); err != nil {
			return nil, &WalkError{PlaylistID: playlistID, Page: page, Err: err}
		}

		w.logger.Debug("playlist page processed",
			slog.String("playlist_id", playlistID),
			slog.Int("page", page),
			slog.Int("items", len(resp.VideoIDs)+resp.Missing),
			slog.Int("short", len(coll.Short)),
			slog.Int("regular", len(coll.Regular)),
		)

		if resp.NextPageToken == "" {
			return coll, nil
		}
		pageToken = resp.NextPageToken
	}
}

// processPage looks up the details of one page and appends its records
// in playlist order.
func (w *Walker) processPage(ctx context.Context, coll *Collection, seen map[string]bool, ids []string) error {
	var batch []string
	for _, id := range ids {
		if seen[id] {
			w.skip(coll, id, "duplicate playlist entry")
			continue
		}
		seen[id] = true
		batch = append(batch, id)
	}
	if len(batch) == 0 {
		return nil
	}

	details, err := w.source.VideoDetails(ctx, batch)
	if err != nil {
		return err
	}

	byID := make(map[string]*ytapi.Video, len(details))
	for _, v := range details {
		if v != nil {
			byID[v.Id] = v
		}
	}

	for _, id := range batch {
		v, ok := byID[id]
		if !ok {
			w.skip(coll, id, "not returned by videos.list")
			continue
		}

		var duration string
		if v.ContentDetails != nil {
			duration = v.ContentDetails.Duration
		}
		if !IsCanonicalDuration(duration) {
			w.logger.Warn("malformed duration, treating as zero",
				slog.String("video_id", id),
				slog.String("duration", duration),
			)
		}
		cat := Classify(ParseDuration(duration))

		rec, err := BuildRecord(v, cat)
		if err != nil {
			reason := "invalid video"
			switch {
			case errors.Is(err, ErrMissingThumbnail):
				reason = "missing default thumbnail"
			case errors.Is(err, ErrMissingSnippet):
				reason = "missing snippet"
			}
			w.skip(coll, id, reason)
			continue
		}
		if rec.UploadDate == NoDate {
			w.logger.Debug("unparseable publish timestamp",
				slog.String("video_id", id),
				slog.String("published_at", v.Snippet.PublishedAt),
			)
		}
		coll.add(rec)
	}
	return nil
}

func (w *Walker) skip(coll *Collection, id, reason string) {
	w.logger.Warn("skipping video",
		slog.String("video_id", id),
		slog.String("reason", reason),
	)
	coll.skip(id, reason)
}
