package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/hboone/quotemill"
)

// Compile-time interface verification.
var _ quotemill.QuoteService = (*QuoteService)(nil)

// QuoteService implements quotemill.QuoteService using SQLite.
type QuoteService struct {
	db *DB
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(db *DB) *QuoteService {
	return &QuoteService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateRun records a run and assigns its ID and creation time.
func (s *QuoteService) CreateRun(ctx context.Context, run *quotemill.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, origin, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Source, run.Origin, run.CreatedAt.Format(time.RFC3339))

	return err
}

// CreateQuotes stores quotes under a run, preserving their slice order.
func (s *QuoteService) CreateQuotes(ctx context.Context, runID string, quotes []*quotemill.Quote) error {
	if runID == "" {
		return quotemill.Errorf(quotemill.EINVALID, "run ID required")
	}

	for i, q := range quotes {
		if err := q.Validate(); err != nil {
			return err
		}

		var publishedAt string
		if !q.SourcePublishedAt.IsZero() {
			publishedAt = q.SourcePublishedAt.UTC().Format(time.RFC3339)
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO quotes (id, run_id, worthy, score, category, tone, canonical_text, content_hash,
				short_variant, card_variant, caption_variant, source_title, source_url, source_published_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), runID, q.Worthy, q.Score, q.Category, q.Tone, q.CanonicalText,
			hashContent(strings.TrimSpace(q.CanonicalText)), q.ShortVariant, q.CardVariant,
			q.CaptionVariant, q.SourceTitle, q.SourceURL, publishedAt, i)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindQuotes retrieves stored quotes matching the filter, most recent run
// first, within a run in stored order.
func (s *QuoteService) FindQuotes(ctx context.Context, filter quotemill.QuoteFilter) ([]*quotemill.Quote, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT q.worthy, q.score, q.category, q.tone, q.canonical_text,
			q.short_variant, q.card_variant, q.caption_variant,
			q.source_title, q.source_url, q.source_published_at
		FROM quotes q
		JOIN runs r ON q.run_id = r.id
		WHERE 1=1`)

	if filter.RunID != nil {
		query.WriteString(" AND q.run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.MinScore != nil {
		query.WriteString(" AND q.score >= ?")
		args = append(args, *filter.MinScore)
	}

	query.WriteString(" ORDER BY r.created_at DESC, q.position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*quotemill.Quote
	for rows.Next() {
		var q quotemill.Quote
		var publishedAt string

		if err := rows.Scan(&q.Worthy, &q.Score, &q.Category, &q.Tone, &q.CanonicalText,
			&q.ShortVariant, &q.CardVariant, &q.CaptionVariant,
			&q.SourceTitle, &q.SourceURL, &publishedAt); err != nil {
			return nil, err
		}

		if publishedAt != "" {
			q.SourcePublishedAt, err = parseRFC3339(publishedAt, "source_published_at")
			if err != nil {
				return nil, err
			}
		}

		quotes = append(quotes, &q)
	}

	return quotes, rows.Err()
}
