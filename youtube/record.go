package youtube

import (
	"fmt"
	"strings"
	"time"

	ytapi "google.golang.org/api/youtube/v3"
)

// Placeholders written when a field is missing or unparseable.
const (
	NoTitle = "No Title"
	NoDate  = "No Date"
	NoTime  = "No Time"
)

const (
	dateLayout = "January 02, 2006"
	timeLayout = "03:04 PM"
)

// VideoRecord is the exported view of one video.
type VideoRecord struct {
	// ID is the video ID. It is not exported to text or spreadsheet files.
	ID string `json:"id"`
	// Category is the class the record was built for.
	Category Category `json:"-"`

	URL        string `json:"url"`
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	UploadDate string `json:"upload_date"`
	UploadTime string `json:"upload_time"`
	Views      uint64 `json:"views"`
	Comments   uint64 `json:"comments"`
}

// BuildRecord maps a videos.list item onto a VideoRecord for the given category.
// It fails when the snippet or its default thumbnail is missing.
func BuildRecord(v *ytapi.Video, cat Category) (VideoRecord, error) {
	if v == nil || v.Snippet == nil {
		return VideoRecord{}, ErrMissingSnippet
	}
	thumbs := v.Snippet.Thumbnails
	if thumbs == nil || thumbs.Default == nil || thumbs.Default.Url == "" {
		return VideoRecord{}, fmt.Errorf("video %s: %w", v.Id, ErrMissingThumbnail)
	}

	rec := VideoRecord{
		ID:        v.Id,
		Category:  cat,
		URL:       cat.VideoURL(v.Id),
		Title:     v.Snippet.Title,
		Thumbnail: thumbs.Default.Url,
	}
	if rec.Title == "" {
		rec.Title = NoTitle
	}
	rec.UploadDate, rec.UploadTime = FormatPublished(v.Snippet.PublishedAt)

	if v.Statistics != nil {
		rec.Views = v.Statistics.ViewCount
		rec.Comments = v.Statistics.CommentCount
	}
	return rec, nil
}

// FormatPublished splits an ISO-8601 timestamp into display date and time.
// Unparseable input yields NoDate and NoTime.
func FormatPublished(ts string) (date, clock string) {
	t, ok := parsePublished(ts)
	if !ok {
		return NoDate, NoTime
	}
	return t.Format(dateLayout), t.Format(timeLayout)
}

func parsePublished(ts string) (time.Time, bool) {
	if strings.HasSuffix(ts, "Z") {
		ts = strings.TrimSuffix(ts, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
