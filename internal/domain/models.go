package domain

import (
	"context"
	"strings"
	"time"
)

// MaxLimit is the largest result count a single Reddit listing page returns.
const MaxLimit = 100

// TimeFilter is a relative lookback window accepted by Reddit search.
type TimeFilter string

const (
	TimeHour  TimeFilter = "hour"
	TimeDay   TimeFilter = "day"
	TimeWeek  TimeFilter = "week"
	TimeMonth TimeFilter = "month"
	TimeYear  TimeFilter = "year"
	TimeAll   TimeFilter = "all"
)

// ParseTimeFilter validates a user-supplied time filter string.
func ParseTimeFilter(s string) (TimeFilter, error) {
	switch tf := TimeFilter(strings.ToLower(strings.TrimSpace(s))); tf {
	case TimeHour, TimeDay, TimeWeek, TimeMonth, TimeYear, TimeAll:
		return tf, nil
	default:
		return "", &InvalidQueryError{Reason: "unknown time filter: " + s}
	}
}

// Window returns the inclusive lower bound of the lookback window anchored
// at now. The second return is false for "all", which has no lower bound.
// The upper bound is always now itself, exclusive.
func (tf TimeFilter) Window(now time.Time) (time.Time, bool) {
	switch tf {
	case TimeHour:
		return now.Add(-time.Hour), true
	case TimeDay:
		return now.Add(-24 * time.Hour), true
	case TimeWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case TimeMonth:
		return now.AddDate(0, -1, 0), true
	case TimeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// Query describes one search run. Immutable once built.
type Query struct {
	Keywords  []string // lowercased match terms
	Subreddit string   // empty means all of Reddit
	Limit     int
	Time      TimeFilter
}

// Validate rejects bad input before any network call is made.
func (q Query) Validate() error {
	if len(q.Keywords) == 0 {
		return &InvalidQueryError{Reason: "at least one keyword is required"}
	}
	for _, k := range q.Keywords {
		if strings.TrimSpace(k) == "" {
			return &InvalidQueryError{Reason: "keywords must not be blank"}
		}
	}
	if q.Limit <= 0 {
		return &InvalidQueryError{Reason: "limit must be positive"}
	}
	if q.Limit > MaxLimit {
		return &InvalidQueryError{Reason: "limit must be at most 100"}
	}
	if _, err := ParseTimeFilter(string(q.Time)); err != nil {
		return err
	}
	return nil
}

// Content types for exported rows.
const (
	ContentSubmission = "submission"
	ContentComment    = "comment"
)

// Post is the clean record produced at the collector boundary.
type Post struct {
	ID          string
	ContentType string // submission or comment
	Title       string
	Body        string
	Author      string
	Subreddit   string
	URL         string
	Score       int
	IsSelf      bool
	CreatedAt   time.Time
	KeywordsHit []string
}

// Searcher defines the interface for fetching candidate posts.
type Searcher interface {
	// Search returns at most q.Limit posts in upstream order.
	Search(ctx context.Context, q Query) ([]Post, error)
}

// CommentLister is implemented by searchers that can expand a post's
// comment tree into comment records.
type CommentLister interface {
	Comments(ctx context.Context, post Post) ([]Post, error)
}
