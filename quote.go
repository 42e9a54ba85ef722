package quotemill

import (
	"context"
	"sort"
	"strings"
	"time"
)

// Candidate excerpt categories. The classifier assigns each excerpt a
// target rendering format.
const (
	CategoryShortForm = "short_form"
	CategoryCard      = "card"
	CategoryLongForm  = "long_form"
)

// Documented candidate tones. The set is open; the classifier may return
// values outside this list and they are preserved as-is.
const (
	ToneInformational = "informational"
	TonePersuasive    = "persuasive"
	ToneCautionary    = "cautionary"
	ToneHopeful       = "hopeful"
	ToneExhortative   = "exhortative"
)

// Candidate is one classifier-proposed excerpt parsed from a chunk's
// scoring response.
type Candidate struct {
	Worthy   bool   `json:"worthy"`
	Score    int    `json:"score"`
	Category string `json:"category"`
	Tone     string `json:"tone"`

	// CanonicalText is the final polished excerpt and the dedup key.
	CanonicalText string `json:"canonicalText"`

	// Alternate renderings of the same excerpt.
	ShortVariant   string `json:"shortVariant"`
	CardVariant    string `json:"cardVariant"`
	CaptionVariant string `json:"captionVariant"`
}

// Admissible reports whether the candidate qualifies for the result set
// under the given minimum score. Unworthy candidates never qualify,
// regardless of score.
func (c *Candidate) Admissible(minScore int) bool {
	return c.Worthy && c.Score >= minScore && strings.TrimSpace(c.CanonicalText) != ""
}

// Quote is a candidate merged with its source article's metadata. It is
// the unit returned to rendering, export, and notification collaborators.
type Quote struct {
	Candidate

	SourceTitle       string    `json:"sourceTitle"`
	SourceURL         string    `json:"sourceUrl"`
	SourcePublishedAt time.Time `json:"sourcePublishedAt"`
}

// Validate returns an error if the quote contains invalid fields.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.CanonicalText) == "" {
		return Errorf(EINVALID, "quote canonical text required")
	}
	if q.SourceURL == "" {
		return Errorf(EINVALID, "quote source URL required")
	}
	return nil
}

// MergeQuote combines a candidate with its originating article.
func MergeQuote(article *Article, candidate Candidate) *Quote {
	return &Quote{
		Candidate:         candidate,
		SourceTitle:       article.Title,
		SourceURL:         article.URL,
		SourcePublishedAt: article.PublishedAt,
	}
}

// DedupeQuotes collapses quotes sharing an equal trimmed canonical text,
// keeping the first occurrence in slice order. Quotes with an empty
// canonical text are dropped entirely. The operation is idempotent.
func DedupeQuotes(quotes []*Quote) []*Quote {
	seen := make(map[string]bool, len(quotes))
	unique := make([]*Quote, 0, len(quotes))

	for _, q := range quotes {
		key := strings.TrimSpace(q.CanonicalText)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, q)
	}

	return unique
}

// TopQuotes returns up to n quotes ordered by descending score. The sort
// is stable, so equal scores keep their processing order. The input slice
// is not modified.
func TopQuotes(quotes []*Quote, n int) []*Quote {
	sorted := make([]*Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Scorer sends a chunk to the external classifier and parses the response
// into candidate excerpts.
//
// Three outcomes are distinguished: a well-formed response with nothing
// worth extracting returns an empty slice; a malformed-but-parseable
// response is treated the same (implementations log it); a transport or
// payload-parse failure returns an error so the caller can skip the chunk
// and continue.
type Scorer interface {
	Score(ctx context.Context, chunk Chunk) ([]Candidate, error)
}
