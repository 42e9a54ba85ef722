// Package trafilatura provides a boilerplate-removing content extractor
// backed by go-trafilatura. It handles full article pages where the
// CSS-selector heuristics in goquery/ fail.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/hboone/quotemill"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements quotemill.Extractor at compile time.
var _ quotemill.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with
// boilerplate (navigation, footers, asides) removed.
func (e *Extractor) Extract(rawHTML string) (*quotemill.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, quotemill.Errorf(quotemill.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &quotemill.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
