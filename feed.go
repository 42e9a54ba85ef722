package quotemill

import (
	"context"
	"time"
)

// FeedItem is one entry parsed from a syndication feed document.
type FeedItem struct {
	Title       string
	URL         string
	PublishedAt time.Time

	// Content holds the feed's inline body: content:encoded when
	// present, else the item description. May be empty for feeds that
	// publish bare links.
	Content string
}

// FeedService retrieves and parses syndication feed documents.
type FeedService interface {
	// FetchItems returns the feed's items in document order. An item's
	// publish date is zero when the feed's date string cannot be parsed.
	FetchItems(ctx context.Context, feedURL string) ([]FeedItem, error)
}

// DomainLimiter provides per-domain request pacing.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
