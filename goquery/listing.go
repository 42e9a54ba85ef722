// Package goquery provides CSS-selector-based link discovery and content
// extraction heuristics for CMS article pages.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hboone/quotemill"
)

// DefaultLinkPatterns are the path substrings that mark a listing link as
// an article link on common CMS layouts.
var DefaultLinkPatterns = []string{"/posts/", "/p/", "/blog/", "/article/"}

// Ensure LinkExtractor implements quotemill.LinkExtractor at compile time.
var _ quotemill.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers article links in listing pages by matching href
// path patterns.
type LinkExtractor struct {
	// Patterns are href substrings that qualify a link as an article
	// link. Empty means DefaultLinkPatterns.
	Patterns []string
}

// ExtractLinks implements quotemill.LinkExtractor.
func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]string, error) {
	return ExtractArticleLinks(html, baseURL, e.Patterns)
}

// ExtractArticleLinks parses a listing page and returns absolute article
// URLs in document order. A link qualifies when its href contains any of
// the given path patterns. Relative hrefs are resolved against baseURL;
// links to other hosts are filtered out; duplicates keep their first
// occurrence.
func ExtractArticleLinks(html string, baseURL string, patterns []string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, quotemill.Errorf(quotemill.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, quotemill.Errorf(quotemill.EINVALID, "failed to parse HTML: %v", err)
	}

	if len(patterns) == 0 {
		patterns = DefaultLinkPatterns
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		if !matchesAnyPattern(href, patterns) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return
		}

		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links, nil
}

func matchesAnyPattern(href string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(href, p) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved
// URL is self-referential. Fragments are stripped for deduplication.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
