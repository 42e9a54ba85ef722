// Package fs provides file-based export and credential resolution.
package fs

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hboone/quotemill"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// csvHeader is the column order for CSV exports.
var csvHeader = []string{
	"canonical_text", "score", "category", "tone",
	"short_variant", "card_variant", "caption_variant",
	"source_title", "source_url", "source_published_at",
}

// Ensure Exporter implements quotemill.Exporter at compile time.
var _ quotemill.Exporter = (*Exporter)(nil)

// Exporter writes quotes to a file as JSON or CSV.
type Exporter struct {
	path   string
	format string
}

// NewExporter creates an Exporter writing to path. The format is inferred
// from the file extension; anything other than .csv exports JSON.
func NewExporter(path string) *Exporter {
	format := FormatJSON
	if filepath.Ext(path) == ".csv" {
		format = FormatCSV
	}
	return &Exporter{path: path, format: format}
}

// Export writes the quotes to the configured file, creating parent
// directories as needed. An existing file is overwritten.
func (e *Exporter) Export(ctx context.Context, quotes []*quotemill.Quote) error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(e.path)
	if err != nil {
		return err
	}
	defer f.Close()

	if e.format == FormatCSV {
		return writeCSV(f, quotes)
	}
	return writeJSON(f, quotes)
}

func writeJSON(f *os.File, quotes []*quotemill.Quote) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if quotes == nil {
		quotes = []*quotemill.Quote{}
	}
	return enc.Encode(quotes)
}

func writeCSV(f *os.File, quotes []*quotemill.Quote) error {
	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, q := range quotes {
		var publishedAt string
		if !q.SourcePublishedAt.IsZero() {
			publishedAt = q.SourcePublishedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			q.CanonicalText,
			strconv.Itoa(q.Score),
			q.Category,
			q.Tone,
			q.ShortVariant,
			q.CardVariant,
			q.CaptionVariant,
			q.SourceTitle,
			q.SourceURL,
			publishedAt,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
