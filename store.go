package quotemill

import (
	"context"
	"time"
)

// Run records one harvest invocation.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Origin    string    `json:"origin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	return nil
}

// QuoteService persists harvest runs and their quotes.
type QuoteService interface {
	// CreateRun records a run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// CreateQuotes stores quotes under a run.
	CreateQuotes(ctx context.Context, runID string, quotes []*Quote) error

	// FindQuotes retrieves stored quotes matching the filter,
	// most recent run first.
	FindQuotes(ctx context.Context, filter QuoteFilter) ([]*Quote, error)
}

// QuoteFilter represents a filter for FindQuotes.
type QuoteFilter struct {
	RunID    *string `json:"runId"`
	MinScore *int    `json:"minScore"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Exporter writes a run's quotes to an external format (files, tables).
type Exporter interface {
	Export(ctx context.Context, quotes []*Quote) error
}
