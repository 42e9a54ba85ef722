package http

import (
	"context"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/hboone/quotemill"
)

// pubDateLayouts are tried in order against a feed item's publish date.
// The first successful parse wins; if none succeeds the date is left zero
// and the caller defaults it to crawl time.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02",
}

// Ensure FeedService implements quotemill.FeedService at compile time.
var _ quotemill.FeedService = (*FeedService)(nil)

// FeedService parses RSS feed documents into items via HTTP.
type FeedService struct {
	fetcher quotemill.Fetcher
}

// NewFeedService creates a FeedService that retrieves feed documents with
// the given fetcher.
func NewFeedService(fetcher quotemill.Fetcher) *FeedService {
	return &FeedService{fetcher: fetcher}
}

// FetchItems retrieves and parses the feed at feedURL.
// Items are returned in document order.
func (s *FeedService) FetchItems(ctx context.Context, feedURL string) ([]quotemill.FeedItem, error) {
	body, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return ParseFeed(body)
}

// ParseFeed parses an RSS document into feed items. Items missing a link
// are skipped; other missing fields are left empty for the caller to
// default.
func ParseFeed(document string) ([]quotemill.FeedItem, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(document); err != nil {
		return nil, quotemill.Errorf(quotemill.EINVALID, "failed to parse feed document: %v", err)
	}

	var items []quotemill.FeedItem
	for _, el := range doc.FindElements("//item") {
		item := quotemill.FeedItem{
			Title:       elementText(el, "title"),
			URL:         elementText(el, "link"),
			PublishedAt: parsePubDate(elementText(el, "pubDate")),
		}
		if item.URL == "" {
			continue
		}

		// Prefer content:encoded over the stub description.
		item.Content = elementText(el, "content:encoded")
		if item.Content == "" {
			item.Content = elementText(el, "description")
		}

		items = append(items, item)
	}

	return items, nil
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func parsePubDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
