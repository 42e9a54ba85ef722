// Package readability provides a content extractor backed by
// go-readability. It tolerates HTML fragments (feed bodies) better than
// trafilatura, which expects full documents.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/hboone/quotemill"
)

// Ensure Extractor implements quotemill.Extractor at compile time.
var _ quotemill.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*quotemill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, quotemill.Errorf(quotemill.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &quotemill.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
