package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeFilter(t *testing.T) {
	valid := []string{"hour", "day", "week", "month", "year", "all", " Week ", "ALL"}
	for _, s := range valid {
		if _, err := ParseTimeFilter(s); err != nil {
			t.Errorf("ParseTimeFilter(%q) returned error: %v", s, err)
		}
	}

	if _, err := ParseTimeFilter("fortnight"); err == nil {
		t.Error("ParseTimeFilter accepted an unknown filter")
	} else {
		var iq *InvalidQueryError
		if !errors.As(err, &iq) {
			t.Errorf("expected InvalidQueryError, got %T", err)
		}
	}
}

func TestWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		tf      TimeFilter
		lower   time.Time
		bounded bool
	}{
		{TimeHour, now.Add(-time.Hour), true},
		{TimeDay, now.Add(-24 * time.Hour), true},
		{TimeWeek, now.Add(-7 * 24 * time.Hour), true},
		{TimeMonth, now.AddDate(0, -1, 0), true},
		{TimeYear, now.AddDate(-1, 0, 0), true},
		{TimeAll, time.Time{}, false},
	}
	for _, tc := range tests {
		lower, bounded := tc.tf.Window(now)
		if bounded != tc.bounded {
			t.Errorf("%s: bounded = %v, want %v", tc.tf, bounded, tc.bounded)
		}
		if bounded && !lower.Equal(tc.lower) {
			t.Errorf("%s: lower = %v, want %v", tc.tf, lower, tc.lower)
		}
	}
}

func TestQueryValidate(t *testing.T) {
	base := Query{Keywords: []string{"rust"}, Limit: 100, Time: TimeWeek}

	tests := []struct {
		name   string
		mutate func(q Query) Query
		wantOK bool
	}{
		{"valid", func(q Query) Query { return q }, true},
		{"no keywords", func(q Query) Query { q.Keywords = nil; return q }, false},
		{"blank keyword", func(q Query) Query { q.Keywords = []string{"rust", "  "}; return q }, false},
		{"zero limit", func(q Query) Query { q.Limit = 0; return q }, false},
		{"negative limit", func(q Query) Query { q.Limit = -5; return q }, false},
		{"over max limit", func(q Query) Query { q.Limit = 101; return q }, false},
		{"bad time filter", func(q Query) Query { q.Time = "decade"; return q }, false},
		{"subreddit optional", func(q Query) Query { q.Subreddit = ""; return q }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mutate(base).Validate()
			if tc.wantOK && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.wantOK {
				var iq *InvalidQueryError
				if !errors.As(err, &iq) {
					t.Fatalf("expected InvalidQueryError, got %v", err)
				}
			}
		})
	}
}
