package quotemill

import (
	"fmt"
	"strings"
)

// FormatQuotes renders quotes as a numbered plain-text list for display
// or notification payloads. Entries are separated by blank lines.
func FormatQuotes(quotes []*Quote) string {
	if len(quotes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(quotes))
	for i, q := range quotes {
		line := strings.TrimSpace(q.CanonicalText)
		entry := fmt.Sprintf("%d. %s (score: %d)", i+1, line, q.Score)
		if q.SourceTitle != "" {
			entry += "\n   — " + q.SourceTitle
		}
		parts = append(parts, entry)
	}

	return strings.Join(parts, "\n\n")
}
