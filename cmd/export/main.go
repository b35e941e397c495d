package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/qepting91/reddit-keyword-export/internal/collector"
	"github.com/qepting91/reddit-keyword-export/internal/config"
	"github.com/qepting91/reddit-keyword-export/internal/domain"
	"github.com/qepting91/reddit-keyword-export/internal/ingest"
	"github.com/qepting91/reddit-keyword-export/internal/logging"
	"github.com/qepting91/reddit-keyword-export/internal/pipeline"
)

// Exit codes per error class. Zero matching rows is still a success.
const (
	exitOK           = 0
	exitConfig       = 1
	exitInvalidQuery = 2
	exitUpstream     = 3
	exitOutputWrite  = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	godotenv.Load()
	logging.Init()

	keywordsFlag := flag.String("keywords", "", "comma-separated list of keywords to search for")
	keywordsFile := flag.String("keywords-file", "", "CSV file with one keyword per line, merged with -keywords")
	subreddit := flag.String("subreddit", "", "specific subreddit to search (default: all of Reddit)")
	limit := flag.Int("limit", 100, "maximum number of results")
	timeFilter := flag.String("time", "week", "time filter: hour, day, week, month, year, all")
	output := flag.String("output", "reddit_keyword_results.csv", "output CSV filename")
	reportPath := flag.String("report", "", "also render an HTML summary report to this path")
	includeComments := flag.Bool("include-comments", false, "expand matched posts into their comment trees (api mode only)")
	flag.Parse()

	keywords := splitKeywords(*keywordsFlag)
	if *keywordsFile != "" {
		fromFile, err := ingest.LoadKeywords(*keywordsFile)
		if err != nil {
			slog.Error("Failed to load keywords file", "path", *keywordsFile, "err", err)
			return exitConfig
		}
		keywords = append(keywords, fromFile...)
	}

	tf, err := domain.ParseTimeFilter(*timeFilter)
	if err != nil {
		slog.Error("Invalid time filter", "err", err)
		return exitInvalidQuery
	}

	query := domain.Query{
		Keywords:  keywords,
		Subreddit: strings.TrimPrefix(*subreddit, "r/"),
		Limit:     *limit,
		Time:      tf,
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Bad configuration", "err", err)
		return exitConfig
	}

	searcher, err := collector.NewSearcher(cfg)
	if err != nil {
		slog.Error("Failed to initialize collector", "err", err)
		return exitConfig
	}
	slog.Info("Collector initialized", "mode", cfg.Mode)

	n, err := pipeline.Run(context.Background(), searcher, query, pipeline.Options{
		OutputPath:      *output,
		ReportPath:      *reportPath,
		IncludeComments: *includeComments,
	})
	if err != nil {
		slog.Error("Run failed", "err", err)
		return exitCode(err)
	}

	slog.Info("Results saved", "rows", n, "output", *output)
	return exitOK
}

func splitKeywords(s string) []string {
	var kws []string
	for _, k := range strings.Split(s, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kws = append(kws, k)
		}
	}
	return kws
}

func exitCode(err error) int {
	var (
		invalid  *domain.InvalidQueryError
		upstream *domain.UpstreamError
		output   *domain.OutputWriteError
	)
	switch {
	case errors.As(err, &invalid):
		return exitInvalidQuery
	case errors.As(err, &upstream):
		return exitUpstream
	case errors.As(err, &output):
		return exitOutputWrite
	default:
		return exitConfig
	}
}
