package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hboone/quotemill"
)

// contentSelectors locate the article body on CMS pages, tried in
// priority order. Ghost-style selectors come first since they are the
// most specific.
var contentSelectors = []string{
	".gh-content",
	".gh-article",
	".post-full-content",
	".post-content",
	".entry-content",
	".article-content",
	".content",
	"article",
	"main",
}

// dateSelectors locate the publish date element, tried in priority order.
var dateSelectors = []string{
	"time[datetime]",
	"time[data-time]",
	".post-date",
	".published",
	".entry-date",
	"[class*=\"date\"]",
}

// dateLayouts are tried in order against the extracted date string.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// Ensure Extractor implements quotemill.Extractor at compile time.
var _ quotemill.Extractor = (*Extractor)(nil)

// Extractor extracts article title and body using an ordered chain of
// CSS selectors. It is tuned for CMS templates (Ghost, WordPress) and is
// the first link in the extraction chain; structure-agnostic extractors
// handle pages it cannot.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract locates the article body via the content selector chain. The
// first selector yielding a non-empty element wins; when none matches
// the page body is used so downstream extraction never starts empty.
func (e *Extractor) Extract(html string) (*quotemill.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quotemill.Errorf(quotemill.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &quotemill.ExtractResult{
		Title: extractTitle(doc),
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if outer, err := goquery.OuterHtml(sel); err == nil && strings.TrimSpace(sel.Text()) != "" {
			result.ContentHTML = outer
			break
		}
	}

	if result.ContentHTML == "" {
		if body, err := goquery.OuterHtml(doc.Find("body").First()); err == nil {
			result.ContentHTML = body
		}
	}

	return result, nil
}

// extractTitle tries page metadata in priority order: og:title,
// twitter:title, the title element, then the first h1.
func extractTitle(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	if content, ok := doc.Find(`meta[name="twitter:title"]`).First().Attr("content"); ok {
		if title := strings.TrimSpace(content); title != "" {
			return title
		}
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return trimSiteSuffix(title)
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// trimSiteSuffix drops " | Site Name" style suffixes from title tags.
func trimSiteSuffix(title string) string {
	if idx := strings.Index(title, " | "); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	return title
}

// Ensure DateExtractor implements quotemill.DateExtractor at compile time.
var _ quotemill.DateExtractor = (*DateExtractor)(nil)

// DateExtractor reads publish dates from article pages via the date
// selector chain.
type DateExtractor struct{}

// ExtractDate implements quotemill.DateExtractor.
func (e *DateExtractor) ExtractDate(html string) time.Time {
	return ExtractPublishedAt(html)
}

// ExtractPublishedAt extracts the article publish date via the date
// selector chain, trying each layout in order against the element's
// datetime attribute or text. Returns the zero time when no selector or
// layout succeeds; callers default it to crawl time.
func ExtractPublishedAt(html string) time.Time {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return time.Time{}
	}

	for _, selector := range dateSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		text, ok := sel.Attr("datetime")
		if !ok || text == "" {
			text, _ = sel.Attr("data-time")
		}
		if text == "" {
			text = sel.Text()
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if t := parseDate(text); !t.IsZero() {
			return t
		}
	}

	return time.Time{}
}

func parseDate(text string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}
	// Timestamps with unrecognized zone suffixes still carry a usable
	// date portion before the T.
	if idx := strings.Index(text, "T"); idx > 0 {
		if t, err := time.Parse("2006-01-02", text[:idx]); err == nil {
			return t
		}
	}
	return time.Time{}
}
