package mock

import (
	"context"

	"github.com/hboone/quotemill"
)

var _ quotemill.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of quotemill.FeedService.
type FeedService struct {
	FetchItemsFn func(ctx context.Context, feedURL string) ([]quotemill.FeedItem, error)
}

func (s *FeedService) FetchItems(ctx context.Context, feedURL string) ([]quotemill.FeedItem, error) {
	return s.FetchItemsFn(ctx, feedURL)
}

var _ quotemill.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of quotemill.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
