// Package crawl implements article discovery strategies and the harvest
// orchestrator that turns discovered articles into scored quotes.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/bloom"
)

// Bloom filter sizing for per-crawl URL deduplication.
const (
	seenListCapacity = 10000
	seenListFPRate   = 0.01
)

// maxListingPages bounds pagination to prevent runaway crawls on listings
// that never 404.
const maxListingPages = 200

// Ensure PageCrawler implements quotemill.Crawler at compile time.
var _ quotemill.Crawler = (*PageCrawler)(nil)

// PageCrawler discovers articles by walking a paginated CMS listing.
// Page 1 is the origin URL itself; subsequent pages follow the /page/N/
// convention. Pagination stops when a page returns not-found, when a page
// yields no links not already seen, or at the page ceiling.
type PageCrawler struct {
	Fetcher     quotemill.Fetcher
	Links       quotemill.LinkExtractor
	Dates       quotemill.DateExtractor
	RateLimiter quotemill.DomainLimiter

	// Origin is the listing URL to start from.
	Origin string

	Logger   *slog.Logger
	Progress quotemill.CrawlProgressFunc
}

// FetchAll walks the listing and fetches each discovered article page.
// Individual article failures are logged and skipped; a listing-level
// failure returns the articles accumulated so far along with the error.
func (c *PageCrawler) FetchAll(ctx context.Context, opts quotemill.CrawlOptions) ([]*quotemill.Article, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := url.Parse(c.Origin); err != nil || c.Origin == "" {
		return nil, quotemill.Errorf(quotemill.EINVALID, "invalid listing origin %q", c.Origin)
	}

	seen := bloom.NewSeenList(seenListCapacity, seenListFPRate)
	var articles []*quotemill.Article

	for page := 1; page <= maxListingPages && opts.WantsMore(len(articles)); page++ {
		pageURL := listingPageURL(c.Origin, page)

		if err := c.wait(ctx, pageURL); err != nil {
			return articles, err
		}

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if quotemill.ErrorCode(err) == quotemill.ENOTFOUND && page > 1 {
				break
			}
			return articles, err
		}

		links, err := c.Links.ExtractLinks(html, pageURL)
		if err != nil {
			return articles, err
		}

		newLinks := 0
		for _, link := range links {
			if !seen.MarkSeen(link) {
				continue
			}
			newLinks++

			if !opts.WantsMore(len(articles)) {
				break
			}

			article, err := c.fetchArticle(ctx, link, opts)
			if err != nil {
				if ctx.Err() != nil {
					return articles, ctx.Err()
				}
				logger.Warn("skipping article", "url", link, "error", err)
				c.progress(quotemill.CrawlProgress{URL: link, Count: len(articles), Error: err})
				continue
			}
			if article == nil {
				continue
			}

			articles = append(articles, article)
			c.progress(quotemill.CrawlProgress{URL: link, Count: len(articles)})
		}

		if newLinks == 0 {
			break
		}
	}

	return articles, nil
}

// fetchArticle fetches one article page and stamps its publish date.
// Returns (nil, nil) when the article is excluded by the Since filter.
func (c *PageCrawler) fetchArticle(ctx context.Context, link string, opts quotemill.CrawlOptions) (*quotemill.Article, error) {
	if err := c.wait(ctx, link); err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, link)
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

	return &quotemill.Article{
		URL:         link,
		PublishedAt: publishedAt,
		RawContent:  html,
	}, nil
}

func (c *PageCrawler) wait(ctx context.Context, rawURL string) error {
	if c.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return c.RateLimiter.Wait(ctx, u.Host)
}

func (c *PageCrawler) progress(p quotemill.CrawlProgress) {
	if c.Progress != nil {
		c.Progress(p)
	}
}

// listingPageURL returns the URL for the Nth listing page. Page 1 is the
// origin itself; later pages use the /page/N/ convention.
func listingPageURL(origin string, page int) string {
	if page <= 1 {
		return origin
	}
	return fmt.Sprintf("%s/page/%d/", strings.TrimSuffix(origin, "/"), page)
}
