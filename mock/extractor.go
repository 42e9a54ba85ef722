package mock

import (
	"time"

	"github.com/hboone/quotemill"
)

var _ quotemill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of quotemill.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*quotemill.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*quotemill.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ quotemill.Converter = (*Converter)(nil)

// Converter is a mock implementation of quotemill.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ quotemill.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of quotemill.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ quotemill.DateExtractor = (*DateExtractor)(nil)

// DateExtractor is a mock implementation of quotemill.DateExtractor.
type DateExtractor struct {
	ExtractDateFn func(html string) time.Time
}

func (e *DateExtractor) ExtractDate(html string) time.Time {
	return e.ExtractDateFn(html)
}
