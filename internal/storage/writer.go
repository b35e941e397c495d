package storage

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

var header = []string{
	"id", "content_type", "title", "content", "author",
	"subreddit", "created_utc", "score", "url", "keywords",
}

const timeLayout = "2006-01-02 15:04:05"

// CSVWriter writes one run's result rows to a single CSV file,
// truncating whatever was at the path before.
type CSVWriter struct {
	FilePath string
}

// Write persists the rows in order and returns the number of data rows
// written. On failure the count is zero: a failed export produces no
// usable output regardless of how much reached the disk.
func (w *CSVWriter) Write(rows []domain.Post) (int, error) {
	f, err := os.Create(w.FilePath)
	if err != nil {
		return 0, &domain.OutputWriteError{Path: w.FilePath, Err: err}
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return 0, &domain.OutputWriteError{Path: w.FilePath, Err: err}
	}
	for _, p := range rows {
		if err := cw.Write(record(p)); err != nil {
			return 0, &domain.OutputWriteError{Path: w.FilePath, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, &domain.OutputWriteError{Path: w.FilePath, Err: err}
	}
	if err := f.Close(); err != nil {
		return 0, &domain.OutputWriteError{Path: w.FilePath, Err: err}
	}
	return len(rows), nil
}

func record(p domain.Post) []string {
	content := p.Body
	if p.ContentType == domain.ContentSubmission && (!p.IsSelf || p.Body == "") {
		content = "[External link]"
	}
	return []string{
		p.ID,
		p.ContentType,
		p.Title,
		content,
		p.Author,
		p.Subreddit,
		p.CreatedAt.UTC().Format(timeLayout),
		strconv.Itoa(p.Score),
		p.URL,
		strings.Join(p.KeywordsHit, ";"),
	}
}
