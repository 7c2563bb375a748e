// Package youtubetest provides an in-memory youtube.Source for tests.
package youtubetest

import (
	"context"
	"fmt"
	"strconv"

	ytapi "google.golang.org/api/youtube/v3"

	"ytscrape/youtube"
)

// FakeSource serves a fixed channel whose uploads playlist is split into
// Pages. It records every call it receives.
type FakeSource struct {
	ChannelInfo youtube.Channel
	// Pages holds the video IDs of each playlist page in order. An empty
	// ID stands for a playlist item without a video ID.
	Pages [][]string
	// Videos holds the videos.list payload by ID. IDs absent here are
	// silently omitted from VideoDetails responses.
	Videos map[string]*ytapi.Video

	// FailPage makes PlaylistPage fail on this 1-based page. Zero never fails.
	FailPage int
	// FailDetails makes VideoDetails fail on this 1-based call. Zero never fails.
	FailDetails int
	// Err is returned by injected failures.
	Err error

	PageCalls    []PageCall
	DetailsCalls [][]string
}

// PageCall records the arguments of one PlaylistPage call.
type PageCall struct {
	PlaylistID string
	PageSize   int
	PageToken  string
}

// NewFakeSource returns a source for channel "UCfake" with the given pages.
func NewFakeSource(pages [][]string) *FakeSource {
	return &FakeSource{
		ChannelInfo: youtube.Channel{
			ID:                "UCfakefakefakefakefakefa",
			Title:             "Fake Channel",
			UploadsPlaylistID: "UUfakefakefakefakefakefa",
		},
		Pages:  pages,
		Videos: make(map[string]*ytapi.Video),
		Err:    fmt.Errorf("injected failure"),
	}
}

// Channel returns ChannelInfo for any reference.
func (f *FakeSource) Channel(ctx context.Context, ref string) (*youtube.Channel, error) {
	ch := f.ChannelInfo
	return &ch, nil
}

// PlaylistPage serves Pages; page tokens are the decimal index of the next page.
func (f *FakeSource) PlaylistPage(ctx context.Context, playlistID string, pageSize int, pageToken string) (*youtube.PlaylistPage, error) {
	f.PageCalls = append(f.PageCalls, PageCall{PlaylistID: playlistID, PageSize: pageSize, PageToken: pageToken})
	if f.FailPage == len(f.PageCalls) {
		return nil, &youtube.SourceError{Op: "playlistItems.list", Err: f.Err}
	}

	idx := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken)
		if err != nil {
			return nil, fmt.Errorf("bad page token %q", pageToken)
		}
		idx = n
	}

	page := &youtube.PlaylistPage{}
	if idx < len(f.Pages) {
		for _, id := range f.Pages[idx] {
			if id == "" {
				page.Missing++
				continue
			}
			page.VideoIDs = append(page.VideoIDs, id)
		}
	}
	if idx+1 < len(f.Pages) {
		page.NextPageToken = strconv.Itoa(idx + 1)
	}
	return page, nil
}

// VideoDetails returns the known videos among ids in request order.
func (f *FakeSource) VideoDetails(ctx context.Context, ids []string) ([]*ytapi.Video, error) {
	f.DetailsCalls = append(f.DetailsCalls, append([]string(nil), ids...))
	if f.FailDetails == len(f.DetailsCalls) {
		return nil, &youtube.SourceError{Op: "videos.list", Err: f.Err}
	}

	var out []*ytapi.Video
	for _, id := range ids {
		if v, ok := f.Videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Video builds a complete videos.list item with the given duration.
func Video(id, duration string) *ytapi.Video {
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
		Statistics:     &ytapi.VideoStatistics{ViewCount: 100, CommentCount: 3},
	}
}

// MixedChannel builds a source with pages of the given sizes where every
// shortEvery-th video (starting with the first) is a short, until shorts
// shorts exist; the rest are regular videos.
func MixedChannel(pageSizes []int, shortEvery, shorts int) *FakeSource {
	var pages [][]string
	videos := make(map[string]*ytapi.Video)
	n, made := 0, 0
	for _, size := range pageSizes {
		page := make([]string, 0, size)
		for i := 0; i < size; i++ {
			id := fmt.Sprintf("vid%03d", n)
			duration := "PT5M12S"
			if made < shorts && n%shortEvery == 0 {
				duration = "PT42S"
				made++
			}
			videos[id] = Video(id, duration)
			page = append(page, id)
			n++
		}
		pages = append(pages, page)
	}

	f := NewFakeSource(pages)
	f.Videos = videos
	return f
}
