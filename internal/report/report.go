package report

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

// Write renders a one-page HTML summary of the run: where the matches came
// from and which keywords hit.
func Write(path string, rows []domain.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	defer f.Close()

	// 1. Subreddit Dominance
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Subreddit Dominance"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	subCounts := make(map[string]int)
	for _, p := range rows {
		subCounts[p.Subreddit]++
	}

	var pieItems []opts.PieData
	for k, v := range subCounts {
		pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
	}
	pie.AddSeries("Matches", pieItems)

	// 2. Keyword Hits
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Keyword Hits"}))

	kwCounts := make(map[string]int)
	for _, p := range rows {
		for _, k := range p.KeywordsHit {
			kwCounts[k]++
		}
	}

	var barX []string
	var barY []opts.BarData
	for k, v := range kwCounts {
		barX = append(barX, k)
		barY = append(barY, opts.BarData{Value: v})
	}
	bar.SetXAxis(barX).AddSeries("Mentions", barY)

	if err := pie.Render(f); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	if err := bar.Render(f); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
