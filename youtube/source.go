// Package youtube enumerates a channel's uploads and classifies them as shorts
// or regular videos.
package youtube

import (
	"context"
	"errors"

	ytapi "google.golang.org/api/youtube/v3"
)

// Sentinel errors for channel lookup and record building.
var (
	ErrChannelNotFound  = errors.New("youtube: channel not found")
	ErrInvalidChannel   = errors.New("youtube: invalid channel reference")
	ErrNoUploads        = errors.New("youtube: channel has no uploads playlist")
	ErrMissingSnippet   = errors.New("youtube: video has no snippet")
	ErrMissingThumbnail = errors.New("youtube: video has no default thumbnail")
)

// MaxPageSize is the largest page the Data API returns for playlistItems.list
// and the largest ID batch accepted by videos.list.
const MaxPageSize = 50

// Source is the paginated data source the Walker reads from.
// APISource is the YouTube Data API v3 implementation.
type Source interface {
	// Channel resolves a channel ID, channel URL or @handle.
	Channel(ctx context.Context, ref string) (*Channel, error)

	// PlaylistPage returns one page of video IDs from a playlist.
	// An empty pageToken requests the first page.
	PlaylistPage(ctx context.Context, playlistID string, pageSize int, pageToken string) (*PlaylistPage, error)

	// VideoDetails looks up snippet, statistics and content details for
	// up to MaxPageSize videos in a single call.
	VideoDetails(ctx context.Context, ids []string) ([]*ytapi.Video, error)
}

// Channel identifies a channel and its uploads playlist.
type Channel struct {
	// ID is the channel ID (e.g., "UCuAXFkgsw1L7xaCfnd5JJOw").
	ID string `json:"id"`
	// Title is the display name of the channel.
	Title string `json:"title"`
	// UploadsPlaylistID is the platform-managed playlist holding every upload.
	UploadsPlaylistID string `json:"uploads_playlist_id"`
}

// URL returns the channel page URL.
func (c Channel) URL() string {
	return "https://www.youtube.com/channel/" + c.ID
}

// PlaylistPage is one page of a playlist listing.
type PlaylistPage struct {
	VideoIDs      []string
	NextPageToken string

	// Missing counts items on the page that carried no video ID.
	Missing int
}

// SourceError wraps data source failures with the operation that failed.
// Use errors.As() to extract it:
//
//	var srcErr *youtube.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s failed: %v\n", srcErr.Op, srcErr.Err)
//	}
type SourceError struct {
	// Op is the API call that failed ("channels.list", "playlistItems.list", "videos.list").
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the source error.
func (e *SourceError) Error() string {
	return "youtube: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *SourceError) Unwrap() error { return e.Err }
