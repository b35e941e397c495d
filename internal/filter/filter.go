package filter

import (
	"strings"
	"time"

	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

// Hits returns the keywords occurring as case-insensitive substrings of the
// post's title or body. Matching is substring-based on purpose: "rust" also
// hits "trust". Tokenized matching would trade recall for precision and the
// tool leans toward recall.
func Hits(p domain.Post, q domain.Query) []string {
	title := strings.ToLower(p.Title)
	body := strings.ToLower(p.Body)
	if p.ContentType == domain.ContentComment {
		// A comment row carries its parent's title; only its own body counts.
		title = ""
	}

	var hits []string
	for _, k := range q.Keywords {
		if strings.Contains(title, k) || strings.Contains(body, k) {
			hits = append(hits, k)
		}
	}
	return hits
}

// Matches reports whether the post passes both predicates: at least one
// keyword hit, and a creation time inside the lookback window anchored at
// now. The time check is skipped when the keyword check already failed.
func Matches(p domain.Post, q domain.Query, now time.Time) bool {
	if len(Hits(p, q)) == 0 {
		return false
	}
	return inWindow(p.CreatedAt, q.Time, now)
}

// inWindow applies the shared boundary semantics: lower bound inclusive,
// upper bound exclusive at now. The upstream t= parameter uses the same
// window, so this is a consistent re-check, not a second definition.
func inWindow(created time.Time, tf domain.TimeFilter, now time.Time) bool {
	lower, bounded := tf.Window(now)
	if bounded && created.Before(lower) {
		return false
	}
	return created.Before(now)
}

// Pass carries the dedup state for one filter run. The anchor time is fixed
// when the pass starts so every post sees the same window.
type Pass struct {
	query domain.Query
	now   time.Time
	seen  map[string]struct{}
}

func NewPass(q domain.Query) *Pass {
	return NewPassAt(q, time.Now().UTC())
}

func NewPassAt(q domain.Query, now time.Time) *Pass {
	return &Pass{query: q, now: now, seen: make(map[string]struct{})}
}

// Admit runs both predicates plus dedup. Accepted posts come back with
// KeywordsHit stamped; a repeated ID is dropped silently.
func (f *Pass) Admit(p domain.Post) (domain.Post, bool) {
	hits := Hits(p, f.query)
	if len(hits) == 0 {
		return p, false
	}
	if !inWindow(p.CreatedAt, f.query.Time, f.now) {
		return p, false
	}
	if _, dup := f.seen[p.ID]; dup {
		return p, false
	}
	f.seen[p.ID] = struct{}{}
	p.KeywordsHit = hits
	return p, true
}

// Apply filters a fetched batch in order, returning the surviving rows.
func Apply(posts []domain.Post, q domain.Query) []domain.Post {
	pass := NewPass(q)
	var rows []domain.Post
	for _, p := range posts {
		if row, ok := pass.Admit(p); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
