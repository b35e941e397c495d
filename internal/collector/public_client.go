package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/qepting91/reddit-keyword-export/internal/domain"
	"golang.org/x/time/rate"
)

type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

type redditJSONResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				ID         string  `json:"id"`
				Title      string  `json:"title"`
				SelfText   string  `json:"selftext"`
				Subreddit  string  `json:"subreddit_name_prefixed"`
				Author     string  `json:"author"`
				Permalink  string  `json:"permalink"`
				Score      int     `json:"score"`
				IsSelf     bool    `json:"is_self"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

func NewPublicClient(userAgent string) (*PublicClient, error) {
	return &PublicClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Public JSON Limit: 1 req / 2 seconds (Stricter)
		limiter:   rate.NewLimiter(rate.Every(2*time.Second), 1),
		userAgent: userAgent,
	}, nil
}

func (pc *PublicClient) Search(ctx context.Context, q domain.Query) ([]domain.Post, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Op: "search", Err: err}
	}

	endpoint := "https://www.reddit.com/search.json"
	params := url.Values{}
	if q.Subreddit != "" {
		endpoint = fmt.Sprintf("https://www.reddit.com/r/%s/search.json", q.Subreddit)
		params.Set("restrict_sr", "1")
	}
	params.Set("q", searchQuery(q.Keywords))
	params.Set("sort", "new")
	params.Set("t", string(q.Time))
	params.Set("limit", strconv.Itoa(q.Limit))

	req, _ := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	req.Header.Set("User-Agent", pc.userAgent)

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "search", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, &domain.UpstreamError{
			Op:  "search",
			Err: fmt.Errorf("reddit public access status: %d", resp.StatusCode),
		}
	}

	var rResp redditJSONResponse
	if err := json.NewDecoder(resp.Body).Decode(&rResp); err != nil {
		return nil, &domain.UpstreamError{Op: "search", Err: err}
	}

	var posts []domain.Post
	for _, child := range rResp.Data.Children {
		d := child.Data
		if d.ID == "" || d.Title == "" || d.CreatedUTC == 0 {
			return nil, &domain.UpstreamError{
				Op:  "search",
				Err: fmt.Errorf("malformed post record in search response"),
			}
		}
		posts = append(posts, domain.Post{
			ID:          d.ID,
			ContentType: domain.ContentSubmission,
			Title:       d.Title,
			Body:        d.SelfText,
			Author:      d.Author,
			Subreddit:   d.Subreddit,
			URL:         "https://www.reddit.com" + d.Permalink,
			Score:       d.Score,
			IsSelf:      d.IsSelf,
			CreatedAt:   time.Unix(int64(d.CreatedUTC), 0).UTC(),
		})
		if len(posts) == q.Limit {
			break
		}
	}
	return posts, nil
}
