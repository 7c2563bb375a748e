package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

var channelIDRegex = regexp.MustCompile(`UC[a-zA-Z0-9_-]{22}`)

// APISource implements Source using YouTube Data API v3.
// Every call it makes costs one quota unit.
type APISource struct {
	service *ytapi.Service
	logger  *slog.Logger

	mu        sync.Mutex
	quotaUsed int
}

// NewAPISource creates an API-key authenticated source. Additional client
// options are applied after the key, e.g. option.WithEndpoint in tests.
// With option.WithHTTPClient the key option is ignored by the client library,
// so the supplied client must send the key itself.
func NewAPISource(ctx context.Context, apiKey string, logger *slog.Logger, opts ...option.ClientOption) (*APISource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &APISource{service: service, logger: logger}, nil
}

// Channel resolves a channel ID, channel URL or @handle to its uploads playlist.
func (a *APISource) Channel(ctx context.Context, ref string) (*Channel, error) {
	call := a.service.Channels.List([]string{"snippet", "contentDetails"}).Context(ctx)

	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "@"):
		call = call.ForHandle(ref)
	case extractChannelIDFromURL(ref) != "":
		call = call.Id(extractChannelIDFromURL(ref))
	case channelIDRegex.MatchString(ref) && channelIDRegex.FindString(ref) == ref:
		call = call.Id(ref)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, ref)
	}

	resp, err := call.Do()
	a.trackQuotaUsage(1)
	if err != nil {
		return nil, &SourceError{Op: "channels.list", Err: err}
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, ref)
	}

	item := resp.Items[0]
	ch := &Channel{ID: item.Id}
	if item.Snippet != nil {
		ch.Title = item.Snippet.Title
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		ch.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	if ch.UploadsPlaylistID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoUploads, ch.ID)
	}
	return ch, nil
}

// PlaylistPage fetches one page of a playlist.
func (a *APISource) PlaylistPage(ctx context.Context, playlistID string, pageSize int, pageToken string) (*PlaylistPage, error) {
	call := a.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(int64(pageSize)).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Do()
	a.trackQuotaUsage(1)
	if err != nil {
		return nil, &SourceError{Op: "playlistItems.list", Err: err}
	}

	page := &PlaylistPage{
		VideoIDs:      make([]string, 0, len(resp.Items)),
		NextPageToken: resp.NextPageToken,
	}
	for _, item := range resp.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			page.Missing++
			continue
		}
		page.VideoIDs = append(page.VideoIDs, item.ContentDetails.VideoId)
	}
	return page, nil
}

// VideoDetails looks up a batch of videos with a single videos.list call.
func (a *APISource) VideoDetails(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxPageSize {
		return nil, fmt.Errorf("youtube: %d ids exceeds batch limit of %d", len(ids), MaxPageSize)
	}

	resp, err := a.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	a.trackQuotaUsage(1)
	if err != nil {
		return nil, &SourceError{Op: "videos.list", Err: err}
	}
	return resp.Items, nil
}

// QuotaUsed returns the quota units consumed so far.
func (a *APISource) QuotaUsed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quotaUsed
}

func (a *APISource) trackQuotaUsage(units int) {
	a.mu.Lock()
	a.quotaUsed += units
	used := a.quotaUsed
	a.mu.Unlock()

	a.logger.Debug("quota usage", slog.Int("units_used", used))
}

// extractChannelIDFromURL extracts the channel ID from a /channel/ URL.
func extractChannelIDFromURL(url string) string {
	if strings.Contains(url, "youtube.com/channel/") {
		parts := strings.Split(url, "youtube.com/channel/")
		if len(parts) > 1 {
			id := strings.Split(parts[1], "/")[0]
			id = strings.Split(id, "?")[0]
			if channelIDRegex.MatchString(id) {
				return id
			}
		}
	}
	return ""
}
