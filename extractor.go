package quotemill

import "time"

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Ensure ExtractorChain implements Extractor at compile time.
var _ Extractor = (ExtractorChain)(nil)

// ExtractorChain tries each extractor in order and returns the first
// result with non-empty content. Extraction is heuristic; different
// extractors succeed on different page shapes, so callers compose a
// preference-ordered chain rather than picking one up front.
type ExtractorChain []Extractor

// Extract returns the first non-empty extraction, or the last error if
// every extractor fails.
func (c ExtractorChain) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range c {
		result, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if result != nil && result.ContentHTML != "" {
			return result, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, Errorf(ENOTFOUND, "no extractor produced content")
}

// LinkExtractor discovers candidate article links in a listing page.
type LinkExtractor interface {
	// ExtractLinks returns absolute same-host article URLs found in the
	// page, in document order, deduplicated.
	ExtractLinks(html, baseURL string) ([]string, error)
}

// DateExtractor parses a publish date out of page markup.
type DateExtractor interface {
	// ExtractDate returns the zero time when no date can be found.
	ExtractDate(html string) time.Time
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown suitable for paragraph segmentation.
	Convert(html string) (string, error)
}
