package mock

import (
	"context"

	"github.com/hboone/quotemill"
)

var _ quotemill.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of quotemill.QuoteService.
type QuoteService struct {
	CreateRunFn    func(ctx context.Context, run *quotemill.Run) error
	CreateQuotesFn func(ctx context.Context, runID string, quotes []*quotemill.Quote) error
	FindQuotesFn   func(ctx context.Context, filter quotemill.QuoteFilter) ([]*quotemill.Quote, error)
}

func (s *QuoteService) CreateRun(ctx context.Context, run *quotemill.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *QuoteService) CreateQuotes(ctx context.Context, runID string, quotes []*quotemill.Quote) error {
	return s.CreateQuotesFn(ctx, runID, quotes)
}

func (s *QuoteService) FindQuotes(ctx context.Context, filter quotemill.QuoteFilter) ([]*quotemill.Quote, error) {
	return s.FindQuotesFn(ctx, filter)
}

var _ quotemill.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of quotemill.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, quotes []*quotemill.Quote) error
}

func (e *Exporter) Export(ctx context.Context, quotes []*quotemill.Quote) error {
	return e.ExportFn(ctx, quotes)
}

var _ quotemill.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of quotemill.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, quotes []*quotemill.Quote) error
}

func (n *Notifier) Notify(ctx context.Context, quotes []*quotemill.Quote) error {
	return n.NotifyFn(ctx, quotes)
}
