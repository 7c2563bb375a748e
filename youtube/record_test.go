package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"
)

// testVideo builds a videos.list item with every field populated.
func testVideo(id, duration string) *ytapi.Video {
	return &ytapi.Video{
		Id: id,
		Snippet: &ytapi.VideoSnippet{
			Title:       "Video " + id,
			PublishedAt: "2024-03-05T14:07:00Z",
			Thumbnails: &ytapi.ThumbnailDetails{
				Default: &ytapi.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/default.jpg"},
			},
		},
		ContentDetails: &ytapi.VideoContentDetails{Duration: duration},
		Statistics:     &ytapi.VideoStatistics{ViewCount: 1500, CommentCount: 12},
	}
}

func TestBuildRecord(t *testing.T) {
	rec, err := BuildRecord(testVideo("abc", "PT30S"), CategoryShort)
	require.NoError(t, err)

	assert.Equal(t, VideoRecord{
		ID:         "abc",
		Category:   CategoryShort,
		URL:        "https://www.youtube.com/shorts/abc",
		Title:      "Video abc",
		Thumbnail:  "https://i.ytimg.com/vi/abc/default.jpg",
		UploadDate: "March 05, 2024",
		UploadTime: "02:07 PM",
		Views:      1500,
		Comments:   12,
	}, rec)

	rec, err = BuildRecord(testVideo("abc", "PT3M"), CategoryRegular)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", rec.URL)
}

func TestBuildRecordDefaults(t *testing.T) {
	v := testVideo("abc", "PT30S")
	v.Snippet.Title = ""
	v.Snippet.PublishedAt = ""
	v.Statistics = nil

	rec, err := BuildRecord(v, CategoryShort)
	require.NoError(t, err)
	assert.Equal(t, NoTitle, rec.Title)
	assert.Equal(t, NoDate, rec.UploadDate)
	assert.Equal(t, NoTime, rec.UploadTime)
	assert.Zero(t, rec.Views)
	assert.Zero(t, rec.Comments)
}

func TestBuildRecordMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *ytapi.Video)
		wantErr error
	}{
		{"no snippet", func(v *ytapi.Video) { v.Snippet = nil }, ErrMissingSnippet},
		{"no thumbnails", func(v *ytapi.Video) { v.Snippet.Thumbnails = nil }, ErrMissingThumbnail},
		{"no default thumbnail", func(v *ytapi.Video) { v.Snippet.Thumbnails.Default = nil }, ErrMissingThumbnail},
		{"empty default thumbnail", func(v *ytapi.Video) { v.Snippet.Thumbnails.Default.Url = "" }, ErrMissingThumbnail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVideo("abc", "PT30S")
			tt.mutate(v)
			_, err := BuildRecord(v, CategoryShort)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := BuildRecord(nil, CategoryShort)
	assert.ErrorIs(t, err, ErrMissingSnippet)
}

func TestFormatPublished(t *testing.T) {
	tests := []struct {
		in       string
		wantDate string
		wantTime string
	}{
		{"2024-03-05T14:07:00Z", "March 05, 2024", "02:07 PM"},
		{"2023-12-31T00:30:59Z", "December 31, 2023", "12:30 AM"},
		{"2024-03-05T09:15:00.123Z", "March 05, 2024", "09:15 AM"},
		{"2024-03-05T23:15:00+02:00", "March 05, 2024", "11:15 PM"},
		{"No Date", NoDate, NoTime},
		{"", NoDate, NoTime},
		{"2024-13-40T00:00:00Z", NoDate, NoTime},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			date, clock := FormatPublished(tt.in)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantTime, clock)
		})
	}
}
