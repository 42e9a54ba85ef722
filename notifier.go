package quotemill

import "context"

// Notifier pushes a harvest summary to an outbound messaging channel.
type Notifier interface {
	// Notify delivers the given quotes. Implementations decide how many
	// to include and how to render them.
	Notify(ctx context.Context, quotes []*Quote) error
}
