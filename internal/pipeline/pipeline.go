package pipeline

import (
	"context"
	"log/slog"

	"github.com/qepting91/reddit-keyword-export/internal/domain"
	"github.com/qepting91/reddit-keyword-export/internal/filter"
	"github.com/qepting91/reddit-keyword-export/internal/report"
	"github.com/qepting91/reddit-keyword-export/internal/storage"
)

// Options controls what one run produces beyond the search itself.
type Options struct {
	OutputPath      string
	ReportPath      string // empty disables the HTML report
	IncludeComments bool
}

// Run executes one fetch, filter, and export cycle and returns the number of
// rows written. Any error is fatal for the run; the caller maps it to an
// exit status.
func Run(ctx context.Context, searcher domain.Searcher, q domain.Query, opts Options) (int, error) {
	posts, err := searcher.Search(ctx, q)
	if err != nil {
		return 0, err
	}
	slog.Info("Fetch complete", "candidates", len(posts))

	lister, canExpand := searcher.(domain.CommentLister)
	if opts.IncludeComments && !canExpand {
		slog.Warn("Collector cannot expand comments, skipping", "mode_hint", "use api mode")
	}

	pass := filter.NewPass(q)
	var rows []domain.Post
	for _, p := range posts {
		row, ok := pass.Admit(p)
		if !ok {
			continue
		}
		rows = append(rows, row)

		if !opts.IncludeComments || !canExpand {
			continue
		}
		comments, err := lister.Comments(ctx, p)
		if err != nil {
			return 0, err
		}
		for _, c := range comments {
			if cr, ok := pass.Admit(c); ok {
				rows = append(rows, cr)
			}
		}
	}
	slog.Info("Filter complete", "matches", len(rows))

	writer := &storage.CSVWriter{FilePath: opts.OutputPath}
	n, err := writer.Write(rows)
	if err != nil {
		return 0, err
	}

	if opts.ReportPath != "" {
		if err := report.Write(opts.ReportPath, rows); err != nil {
			return n, err
		}
		slog.Info("Report saved", "path", opts.ReportPath)
	}
	return n, nil
}
