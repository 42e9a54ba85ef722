package quotemill

import (
	"context"
	"time"
)

// Article represents one discovered content item. It is created by a
// Crawler at fetch time and is immutable thereafter.
type Article struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`

	// RawContent is the markup fragment believed to contain the article
	// body. It may be a full page, a content element, or a feed fragment.
	RawContent string `json:"-"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// CrawlOptions narrows what a crawl returns.
type CrawlOptions struct {
	// Since excludes articles published strictly before this time.
	// Articles whose publish date cannot be determined are included.
	Since *time.Time

	// Limit caps the number of articles returned. Zero means no limit.
	Limit int
}

// WantsMore reports whether a crawl with these options should keep going
// after having accumulated n articles.
func (o CrawlOptions) WantsMore(n int) bool {
	return o.Limit <= 0 || n < o.Limit
}

// Includes reports whether an article published at t passes the Since
// filter. The zero time always passes (fail open).
func (o CrawlOptions) Includes(t time.Time) bool {
	if o.Since == nil || t.IsZero() {
		return true
	}
	return !t.Before(*o.Since)
}

// Crawler discovers articles from one source. Implementations hide the
// source strategy (paginated listing, syndication feed, single URL).
//
// FetchAll returns articles in discovery order. A failure to fetch an
// individual article is logged and skipped; a failure of the top-level
// listing or feed request returns whatever was accumulated along with
// the error.
type Crawler interface {
	FetchAll(ctx context.Context, opts CrawlOptions) ([]*Article, error)
}

// CrawlProgress reports progress during a crawl.
type CrawlProgress struct {
	URL   string
	Count int
	Error error
}

// CrawlProgressFunc is called as articles are discovered or skipped.
type CrawlProgressFunc func(CrawlProgress)
