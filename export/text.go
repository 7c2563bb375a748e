package export

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"ytscrape/youtube"
)

var separator = strings.Repeat("-", 40)

// WriteText writes records to dir/filename as fixed blocks, replacing any
// existing file. The directory is created if missing.
func WriteText(dir, filename string, records []youtube.VideoRecord) (string, error) {
	path := filepath.Join(dir, filename)
	err := writeAtomic(path, func(w io.Writer) error {
		return EncodeText(w, records)
	})
	if err != nil {
		return "", &Error{Format: "text", Path: path, Err: err}
	}
	return path, nil
}

// EncodeText writes one block per record followed by a dashed separator line.
func EncodeText(w io.Writer, records []youtube.VideoRecord) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		fmt.Fprintf(bw, "Title: %s\n", r.Title)
		fmt.Fprintf(bw, "URL: %s\n", r.URL)
		fmt.Fprintf(bw, "Thumbnail: %s\n", r.Thumbnail)
		fmt.Fprintf(bw, "Upload Date: %s\n", r.UploadDate)
		fmt.Fprintf(bw, "Upload Time: %s\n", r.UploadTime)
		fmt.Fprintf(bw, "Views: %d\n", r.Views)
		fmt.Fprintf(bw, "Comments: %d\n", r.Comments)
		fmt.Fprintln(bw, separator)
	}
	return bw.Flush()
}
