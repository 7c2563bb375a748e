package ytscrape

import (
	"ytscrape/export"
	"ytscrape/prompt"
	"ytscrape/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscrape.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var walkErr *ytscrape.WalkError
//	if errors.As(err, &walkErr) {
//		fmt.Printf("Walk of %s failed on page %d: %v\n", walkErr.PlaylistID, walkErr.Page, walkErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// SourceError wraps a failed YouTube Data API call.
	SourceError = youtube.SourceError
	// WalkError reports the playlist page on which a walk failed.
	WalkError = youtube.WalkError
	// ExportError reports which output file could not be written.
	ExportError = export.Error
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the YouTube channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrInvalidChannel indicates the channel reference is not an ID, URL or handle.
	ErrInvalidChannel = youtube.ErrInvalidChannel
	// ErrNoUploads indicates the channel exposes no uploads playlist.
	ErrNoUploads = youtube.ErrNoUploads
	// ErrCancelled indicates the user cancelled the directory prompt.
	ErrCancelled = prompt.ErrCancelled
)
