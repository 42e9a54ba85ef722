package mock

import (
	"context"

	"github.com/hboone/quotemill"
)

var _ quotemill.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of quotemill.Scorer.
type Scorer struct {
	ScoreFn func(ctx context.Context, chunk quotemill.Chunk) ([]quotemill.Candidate, error)
}

func (s *Scorer) Score(ctx context.Context, chunk quotemill.Chunk) ([]quotemill.Candidate, error) {
	return s.ScoreFn(ctx, chunk)
}
