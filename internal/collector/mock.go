package collector

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

// MockClient implements domain.Searcher but returns fake data
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (mc *MockClient) Search(ctx context.Context, q domain.Query) ([]domain.Post, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	sub := q.Subreddit
	if sub == "" {
		sub = "all"
	}

	var posts []domain.Post
	for i := 0; i < q.Limit; i++ {
		// Cycle the keywords through the titles so the filter has hits
		kw := q.Keywords[i%len(q.Keywords)]
		posts = append(posts, domain.Post{
			ID:          fmt.Sprintf("mock_%s_%d", sub, i),
			ContentType: domain.ContentSubmission,
			Title:       fmt.Sprintf("[%s] Simulated post #%d mentioning %s", sub, i, kw),
			Body:        "simulated self text",
			Author:      "simulated_user",
			Subreddit:   "r/" + sub,
			URL:         "http://localhost/mock-url",
			Score:       rand.Intn(500),
			IsSelf:      true,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return posts, nil
}

func (mc *MockClient) Comments(ctx context.Context, post domain.Post) ([]domain.Post, error) {
	var comments []domain.Post
	for i := 0; i < 2; i++ {
		comments = append(comments, domain.Post{
			ID:          fmt.Sprintf("%s_c%d", post.ID, i),
			ContentType: domain.ContentComment,
			Title:       post.Title,
			Body:        fmt.Sprintf("simulated reply #%d on %s", i, post.Title),
			Author:      "simulated_commenter",
			Subreddit:   post.Subreddit,
			URL:         post.URL + fmt.Sprintf("c%d/", i),
			Score:       rand.Intn(50),
			IsSelf:      true,
			CreatedAt:   time.Now().UTC(),
		})
	}
	return comments, nil
}
