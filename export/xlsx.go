package export

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ytscrape/youtube"
)

// SpreadsheetColumns is the header row of every spreadsheet export.
var SpreadsheetColumns = []string{"url", "title", "thumbnail", "upload_date", "upload_time", "views", "comments"}

// WriteSpreadsheets writes one {category}_videos.xlsx per category into dir
// and returns the paths written.
func WriteSpreadsheets(dir string, coll *youtube.Collection) ([]string, error) {
	paths := make([]string, 0, len(youtube.Categories))
	for _, cat := range youtube.Categories {
		path := filepath.Join(dir, SpreadsheetFileName(cat))
		if err := WriteSpreadsheet(path, coll.Bucket(cat)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteSpreadsheet writes records to a single-sheet workbook at path,
// one row per record in order, replacing any existing file.
func WriteSpreadsheet(path string, records []youtube.VideoRecord) error {
	err := writeAtomic(path, func(w io.Writer) error {
		return encodeSpreadsheet(w, records)
	})
	if err != nil {
		return &Error{Format: "xlsx", Path: path, Err: err}
	}
	return nil
}

func encodeSpreadsheet(w io.Writer, records []youtube.VideoRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("new stream writer: %w", err)
	}

	header := make([]interface{}, len(SpreadsheetColumns))
	for i, col := range SpreadsheetColumns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.URL, r.Title, r.Thumbnail, r.UploadDate, r.UploadTime, r.Views, r.Comments}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
