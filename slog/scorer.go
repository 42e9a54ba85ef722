package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hboone/quotemill"
)

// Ensure LoggingScorer implements quotemill.Scorer.
var _ quotemill.Scorer = (*LoggingScorer)(nil)

// LoggingScorer wraps a Scorer with per-chunk logging.
type LoggingScorer struct {
	next   quotemill.Scorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next quotemill.Scorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// Score delegates to the wrapped scorer and logs the operation.
func (s *LoggingScorer) Score(ctx context.Context, chunk quotemill.Chunk) (candidates []quotemill.Candidate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("score chunk",
			"article", chunk.ArticleURL,
			"chunk", chunk.Position,
			"candidates", len(candidates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Score(ctx, chunk)
}
