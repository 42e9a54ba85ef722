// Package bloom provides per-crawl URL deduplication using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenList tracks URLs already visited within one crawl. It is scoped to
// a single crawl invocation, never shared across runs. False positives
// cause a URL to be skipped at the configured rate; false negatives do
// not occur, so a URL is never fetched twice.
type SeenList struct {
	f *bloom.BloomFilter
}

// NewSeenList creates a SeenList sized for n expected URLs with the given
// false positive rate.
func NewSeenList(n uint, fpRate float64) *SeenList {
	return &SeenList{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// MarkSeen records a URL, returning false if it was already seen.
// URL fragments are stripped first - URLs differing only by fragment are
// considered duplicates.
func (s *SeenList) MarkSeen(url string) bool {
	url = stripFragment(url)
	if s.f.TestString(url) {
		return false
	}
	s.f.AddString(url)
	return true
}

// Seen returns true if the URL might have been marked.
func (s *SeenList) Seen(url string) bool {
	return s.f.TestString(stripFragment(url))
}

// Count returns the approximate number of URLs marked.
func (s *SeenList) Count() uint {
	return uint(s.f.ApproximatedSize())
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
