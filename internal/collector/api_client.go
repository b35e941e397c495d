package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-keyword-export/internal/domain"
	"golang.org/x/time/rate"
)

type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

func NewAPIClient(id, secret, user, pass, userAgent string) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	client, err := reddit.NewClient(creds, reddit.WithUserAgent(userAgent))
	if err != nil {
		return nil, err
	}

	// API Rate Limit: ~60 reqs/min (safe buffer)
	limiter := rate.NewLimiter(rate.Every(1*time.Second), 1)

	return &APIClient{client: client, limiter: limiter}, nil
}

func (ac *APIClient) Search(ctx context.Context, q domain.Query) ([]domain.Post, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Op: "search", Err: err}
	}

	opts := &reddit.ListPostSearchOptions{
		ListPostOptions: reddit.ListPostOptions{
			ListOptions: reddit.ListOptions{Limit: q.Limit},
			Time:        string(q.Time),
		},
		Sort: "new",
	}
	posts, _, err := ac.client.Subreddit.SearchPosts(ctx, searchQuery(q.Keywords), q.Subreddit, opts)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "search", Err: err}
	}

	var result []domain.Post
	for _, p := range posts {
		rec, err := fromAPIPost(p)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
		if len(result) == q.Limit {
			break
		}
	}
	return result, nil
}

// Comments walks the full reply tree of a post and returns each comment as
// a comment-typed record.
func (ac *APIClient) Comments(ctx context.Context, post domain.Post) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Op: "comments", Err: err}
	}

	pc, _, err := ac.client.Post.Get(ctx, post.ID)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "comments", Err: err}
	}

	var result []domain.Post
	var walk func(comments []*reddit.Comment)
	walk = func(comments []*reddit.Comment) {
		for _, c := range comments {
			if c.ID == "" || c.Created == nil {
				continue
			}
			author := c.Author
			if author == "" {
				author = "[deleted]"
			}
			result = append(result, domain.Post{
				ID:          c.ID,
				ContentType: domain.ContentComment,
				Title:       post.Title,
				Body:        c.Body,
				Author:      author,
				Subreddit:   post.Subreddit,
				URL:         "https://www.reddit.com" + c.Permalink,
				Score:       c.Score,
				IsSelf:      true,
				CreatedAt:   c.Created.Time,
			})
			walk(c.Replies.Comments)
		}
	}
	walk(pc.Comments)
	return result, nil
}

// fromAPIPost validates required fields at the boundary so malformed records
// never reach the filter.
func fromAPIPost(p *reddit.Post) (domain.Post, error) {
	if p.ID == "" || p.Title == "" || p.Created == nil {
		return domain.Post{}, &domain.UpstreamError{
			Op:  "search",
			Err: errors.New("malformed post record in search response"),
		}
	}
	return domain.Post{
		ID:          p.ID,
		ContentType: domain.ContentSubmission,
		Title:       p.Title,
		Body:        p.Body,
		Author:      p.Author,
		Subreddit:   p.SubredditNamePrefixed,
		URL:         "https://www.reddit.com" + p.Permalink,
		Score:       p.Score,
		IsSelf:      p.IsSelfPost,
		CreatedAt:   p.Created.Time,
	}, nil
}

// searchQuery quotes each keyword for exact matching and ORs them together.
func searchQuery(keywords []string) string {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		quoted = append(quoted, fmt.Sprintf("%q", k))
	}
	return strings.Join(quoted, " OR ")
}
