package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/hboone/quotemill"
)

// Ensure SingleCrawler implements quotemill.Crawler at compile time.
var _ quotemill.Crawler = (*SingleCrawler)(nil)

// SingleCrawler treats one URL as a one-article source.
type SingleCrawler struct {
	Fetcher     quotemill.Fetcher
	Dates       quotemill.DateExtractor
	RateLimiter quotemill.DomainLimiter

	// Origin is the article URL.
	Origin string
}

// FetchAll fetches the origin page. The fetch is the top-level fetch for
// this source, so any failure is returned to the caller.
func (c *SingleCrawler) FetchAll(ctx context.Context, opts quotemill.CrawlOptions) ([]*quotemill.Article, error) {
	if c.RateLimiter != nil {
		u, err := url.Parse(c.Origin)
		if err != nil {
			return nil, quotemill.Errorf(quotemill.EINVALID, "invalid page origin %q", c.Origin)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, c.Origin)
	if err != nil {
		return nil, err
	}

	var publishedAt time.Time
	if c.Dates != nil {
		publishedAt = c.Dates.ExtractDate(html)
	}
	if !opts.Includes(publishedAt) {
		return nil, nil
	}
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	return []*quotemill.Article{{
		URL:         c.Origin,
		PublishedAt: publishedAt,
		RawContent:  html,
	}}, nil
}
