package slack_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	quotes := []*quotemill.Quote{
		{Candidate: quotemill.Candidate{Worthy: true, Score: 6, CanonicalText: "Middling line."}},
		{Candidate: quotemill.Candidate{Worthy: true, Score: 9, CanonicalText: "Best line."}, SourceTitle: "On Lines"},
		{Candidate: quotemill.Candidate{Worthy: true, Score: 8, CanonicalText: "Second best."}},
	}

	t.Run("posts top quotes by score", func(t *testing.T) {
		t.Parallel()

		var received struct {
			Text string `json:"text"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := slack.NewNotifier(server.URL, slack.WithLimit(2))
		require.NoError(t, notifier.Notify(context.Background(), quotes))

		assert.Contains(t, received.Text, "Harvested 3 quotes")
		assert.Contains(t, received.Text, "1. Best line. (score: 9)")
		assert.Contains(t, received.Text, "On Lines")
		assert.Contains(t, received.Text, "2. Second best. (score: 8)")
		assert.NotContains(t, received.Text, "Middling line.")
	})

	t.Run("empty run posts a note", func(t *testing.T) {
		t.Parallel()

		var received struct {
			Text string `json:"text"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		require.NoError(t, slack.NewNotifier(server.URL).Notify(context.Background(), nil))
		assert.Contains(t, received.Text, "No quotes")
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid_payload", http.StatusBadRequest)
		}))
		defer server.Close()

		err := slack.NewNotifier(server.URL).Notify(context.Background(), quotes)
		require.Error(t, err)
		assert.Equal(t, quotemill.EUNAVAILABLE, quotemill.ErrorCode(err))
	})

	t.Run("unreachable webhook is an error", func(t *testing.T) {
		t.Parallel()

		err := slack.NewNotifier("http://127.0.0.1:1/webhook").Notify(context.Background(), quotes)
		require.Error(t, err)
		assert.Equal(t, quotemill.EUNAVAILABLE, quotemill.ErrorCode(err))
	})
}
