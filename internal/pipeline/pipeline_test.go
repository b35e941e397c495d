package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/qepting91/reddit-keyword-export/internal/collector"
	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

// stubSearcher returns a canned batch and records whether it was called.
type stubSearcher struct {
	posts    []domain.Post
	comments map[string][]domain.Post
	called   bool
}

func (s *stubSearcher) Search(ctx context.Context, q domain.Query) ([]domain.Post, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	s.called = true
	return s.posts, nil
}

func (s *stubSearcher) Comments(ctx context.Context, post domain.Post) ([]domain.Post, error) {
	return s.comments[post.ID], nil
}

func stubPost(id, title string) domain.Post {
	return domain.Post{
		ID:          id,
		ContentType: domain.ContentSubmission,
		Title:       title,
		Body:        "text",
		Author:      "author",
		Subreddit:   "r/test",
		URL:         "https://www.reddit.com/r/test/comments/" + id + "/",
		IsSelf:      true,
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
	}
}

func dataRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return records[1:]
}

func TestRunFiltersAndExports(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	s := &stubSearcher{posts: []domain.Post{
		stubPost("1", "rust is great"),
		stubPost("2", "unrelated post"),
		stubPost("3", "more Rust talk"),
		stubPost("1", "rust is great duplicate"),
	}}
	q := domain.Query{Keywords: []string{"rust"}, Limit: 100, Time: domain.TimeWeek}

	n, err := Run(context.Background(), s, q, Options{OutputPath: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}

	rows := dataRows(t, out)
	if len(rows) != 2 || rows[0][0] != "1" || rows[1][0] != "3" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestRunNoMatchesIsNotAnError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	s := &stubSearcher{posts: []domain.Post{stubPost("1", "nothing relevant")}}
	q := domain.Query{Keywords: []string{"zeta999nonexistent"}, Limit: 100, Time: domain.TimeAll}

	n, err := Run(context.Background(), s, q, Options{OutputPath: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows = %d, want 0", n)
	}
	if rows := dataRows(t, out); len(rows) != 0 {
		t.Fatalf("expected header-only output, got %v", rows)
	}
}

func TestRunInvalidQueryBeforeNetwork(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	s := &stubSearcher{posts: []domain.Post{stubPost("1", "rust")}}
	q := domain.Query{Keywords: []string{"rust"}, Limit: 0, Time: domain.TimeWeek}

	_, err := Run(context.Background(), s, q, Options{OutputPath: out})
	var iq *domain.InvalidQueryError
	if !errors.As(err, &iq) {
		t.Fatalf("expected InvalidQueryError, got %v", err)
	}
	if s.called {
		t.Fatal("search was attempted despite an invalid query")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("output file was created for a failed run")
	}
}

func TestRunOutputWriteFailureAfterFetch(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv")
	s := &stubSearcher{posts: []domain.Post{stubPost("1", "rust")}}
	q := domain.Query{Keywords: []string{"rust"}, Limit: 100, Time: domain.TimeWeek}

	n, err := Run(context.Background(), s, q, Options{OutputPath: out})
	var owe *domain.OutputWriteError
	if !errors.As(err, &owe) {
		t.Fatalf("expected OutputWriteError, got %v", err)
	}
	if n != 0 {
		t.Fatalf("rows = %d on failed export, want 0", n)
	}
	if !s.called {
		t.Fatal("fetch should complete before the export fails")
	}
}

func TestRunCommentExpansion(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	parent := stubPost("1", "rust question")
	reply := stubPost("c1", "rust question")
	reply.ContentType = domain.ContentComment
	reply.Body = "answer mentioning rust"
	offTopic := stubPost("c2", "rust question")
	offTopic.ContentType = domain.ContentComment
	offTopic.Body = "nothing to see"

	s := &stubSearcher{
		posts:    []domain.Post{parent},
		comments: map[string][]domain.Post{"1": {reply, offTopic}},
	}
	q := domain.Query{Keywords: []string{"rust"}, Limit: 100, Time: domain.TimeWeek}

	n, err := Run(context.Background(), s, q, Options{OutputPath: out, IncludeComments: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Fatalf("rows = %d, want post + matching comment", n)
	}

	rows := dataRows(t, out)
	if rows[1][0] != "c1" || rows[1][1] != domain.ContentComment {
		t.Fatalf("unexpected comment row: %v", rows[1])
	}
}

func TestRunRespectsLimitThroughMockCollector(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	q := domain.Query{Keywords: []string{"rust"}, Limit: 7, Time: domain.TimeWeek}

	n, err := Run(context.Background(), collector.NewMockClient(), q, Options{OutputPath: out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 7 {
		t.Fatalf("rows = %d, want limit of 7", n)
	}
}

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	rep := filepath.Join(dir, "report.html")
	s := &stubSearcher{posts: []domain.Post{stubPost("1", "rust post")}}
	q := domain.Query{Keywords: []string{"rust"}, Limit: 100, Time: domain.TimeWeek}

	if _, err := Run(context.Background(), s, q, Options{OutputPath: out, ReportPath: rep}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	info, err := os.Stat(rep)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("report file is empty")
	}
}
