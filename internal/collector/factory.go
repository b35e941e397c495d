package collector

import (
	"fmt"

	"github.com/qepting91/reddit-keyword-export/internal/config"
	"github.com/qepting91/reddit-keyword-export/internal/domain"
)

// NewSearcher selects the correct implementation based on the configured mode
func NewSearcher(cfg *config.Config) (domain.Searcher, error) {
	switch cfg.Mode {
	case "api":
		return NewAPIClient(cfg.ClientID, cfg.ClientSecret, cfg.Username, cfg.Password, cfg.UserAgent)
	case "public":
		return NewPublicClient(cfg.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'api', 'public', or 'mock')", cfg.Mode)
	}
}
