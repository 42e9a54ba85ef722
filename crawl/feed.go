package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/bloom"
)

// Ensure FeedCrawler implements quotemill.Crawler at compile time.
var _ quotemill.Crawler = (*FeedCrawler)(nil)

// FeedCrawler discovers articles from a syndication feed. By default each
// item's inline content is used as the article body; with FetchFull set,
// the item's page is fetched instead and the feed content kept as a
// fallback. The feed's publish date always wins over anything on the
// page, since feeds carry authoritative timestamps.
type FeedCrawler struct {
	Feeds       quotemill.FeedService
	Fetcher     quotemill.Fetcher
	RateLimiter quotemill.DomainLimiter

	// Origin is the feed document URL.
	Origin string

	// FetchFull fetches each item's page for the full article body
	// instead of relying on the feed's inline content.
	FetchFull bool

	Logger   *slog.Logger
	Progress quotemill.CrawlProgressFunc
}

// FetchAll retrieves the feed and returns its items as articles, in feed
// order. Items are filtered by the Since option before any secondary page
// fetch is issued. A feed-level failure returns the error with no
// articles; per-item page fetch failures fall back to inline content.
func (c *FeedCrawler) FetchAll(ctx context.Context, opts quotemill.CrawlOptions) ([]*quotemill.Article, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	items, err := c.Feeds.FetchItems(ctx, c.Origin)
	if err != nil {
		return nil, err
	}

	seen := bloom.NewSeenList(seenListCapacity, seenListFPRate)
	var articles []*quotemill.Article

	for _, item := range items {
		if !opts.WantsMore(len(articles)) {
			break
		}
		if !seen.MarkSeen(item.URL) {
			continue
		}
		if !opts.Includes(item.PublishedAt) {
			continue
		}

		content := item.Content
		if c.FetchFull {
			html, err := c.fetchPage(ctx, item.URL)
			if err != nil {
				if ctx.Err() != nil {
					return articles, ctx.Err()
				}
				logger.Warn("falling back to feed content", "url", item.URL, "error", err)
			} else {
				content = html
			}
		}

		if content == "" {
			logger.Warn("skipping feed item with no content", "url", item.URL)
			c.progress(quotemill.CrawlProgress{URL: item.URL, Count: len(articles), Error: quotemill.Errorf(quotemill.ENOTFOUND, "feed item has no content")})
			continue
		}

		publishedAt := item.PublishedAt
		if publishedAt.IsZero() {
			publishedAt = time.Now()
		}

		articles = append(articles, &quotemill.Article{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: publishedAt,
			RawContent:  content,
		})
		c.progress(quotemill.CrawlProgress{URL: item.URL, Count: len(articles)})
	}

	return articles, nil
}

func (c *FeedCrawler) fetchPage(ctx context.Context, rawURL string) (string, error) {
	if c.Fetcher == nil {
		return "", quotemill.Errorf(quotemill.EINVALID, "no fetcher configured for full-page feed crawl")
	}
	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", err
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return c.Fetcher.Fetch(ctx, rawURL)
}

func (c *FeedCrawler) progress(p quotemill.CrawlProgress) {
	if c.Progress != nil {
		c.Progress(p)
	}
}
