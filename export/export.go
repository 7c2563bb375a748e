// Package export writes a youtube.Collection to text, spreadsheet, SQLite and
// JSON manifest files.
package export

import "ytscrape/youtube"

// Output file names.
const (
	RegularTextFile = "regular_videos.txt"
	ShortsTextFile  = "shorts.txt"
	ManifestFile    = "manifest.json"
)

// TextFileName returns the text export file name of a category.
func TextFileName(cat youtube.Category) string {
	if cat == youtube.CategoryShort {
		return ShortsTextFile
	}
	return RegularTextFile
}

// SpreadsheetFileName returns the spreadsheet file name of a category,
// e.g. "short_videos.xlsx".
func SpreadsheetFileName(cat youtube.Category) string {
	return cat.String() + "_videos.xlsx"
}

// Error reports which export file failed.
type Error struct {
	// Format is "text", "xlsx", "sqlite" or "manifest".
	Format string
	Path   string
	Err    error
}

// Error returns a string representation of the export error.
func (e *Error) Error() string {
	return "export: " + e.Format + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
