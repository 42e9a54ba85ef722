package mock

import (
	"context"

	"github.com/hboone/quotemill"
)

var _ quotemill.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of quotemill.Crawler.
type Crawler struct {
	FetchAllFn func(ctx context.Context, opts quotemill.CrawlOptions) ([]*quotemill.Article, error)
}

func (c *Crawler) FetchAll(ctx context.Context, opts quotemill.CrawlOptions) ([]*quotemill.Article, error) {
	return c.FetchAllFn(ctx, opts)
}
