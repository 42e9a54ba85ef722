// Package slack delivers harvest summaries to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hboone/quotemill"
)

// DefaultLimit is the number of top quotes included in a notification.
const DefaultLimit = 5

// DefaultTimeout bounds the webhook request.
const DefaultTimeout = 10 * time.Second

// Ensure Notifier implements quotemill.Notifier at compile time.
var _ quotemill.Notifier = (*Notifier)(nil)

// Notifier posts the top quotes of a run to a Slack incoming webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
	limit      int
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithClient overrides the HTTP client.
func WithClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.client = client
	}
}

// WithLimit sets how many top quotes a notification carries.
func WithLimit(limit int) Option {
	return func(n *Notifier) {
		n.limit = limit
	}
}

// NewNotifier creates a Notifier posting to webhookURL.
func NewNotifier(webhookURL string, opts ...Option) *Notifier {
	n := &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: DefaultTimeout},
		limit:      DefaultLimit,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// payload is Slack's incoming webhook message shape.
type payload struct {
	Text string `json:"text"`
}

// Notify posts the highest-scoring quotes as one message. An empty run
// posts a short note instead of an empty list.
func (n *Notifier) Notify(ctx context.Context, quotes []*quotemill.Quote) error {
	text := "No quotes harvested this run."
	if len(quotes) > 0 {
		top := quotemill.TopQuotes(quotes, n.limit)
		text = fmt.Sprintf("Harvested %d quotes. Top %d:\n\n%s",
			len(quotes), len(top), quotemill.FormatQuotes(top))
	}

	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return quotemill.Errorf(quotemill.EUNAVAILABLE, "webhook post failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return quotemill.Errorf(quotemill.EUNAVAILABLE, "webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}
