package goquery_test

import (
	"testing"

	qmgoquery "github.com/hboone/quotemill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractArticleLinks(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a href="/posts/one">One</a>
		<a href="https://example.com/posts/two">Two</a>
		<a href="/posts/one">One again</a>
		<a href="/about">About</a>
		<a href="https://other.com/posts/three">External</a>
		<a href="mailto:hi@example.com">Mail</a>
		<a href="/posts/one#comments">One with fragment</a>
	</body></html>`

	t.Run("matches patterns, resolves, dedupes, same host only", func(t *testing.T) {
		t.Parallel()

		links, err := qmgoquery.ExtractArticleLinks(html, "https://example.com/t/posts", nil)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://example.com/posts/one",
			"https://example.com/posts/two",
		}, links)
	})

	t.Run("custom patterns", func(t *testing.T) {
		t.Parallel()

		links, err := qmgoquery.ExtractArticleLinks(html, "https://example.com/", []string{"/about"})
		require.NoError(t, err)

		assert.Equal(t, []string{"https://example.com/about"}, links)
	})

	t.Run("invalid base URL is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := qmgoquery.ExtractArticleLinks(html, "://bad", nil)
		require.Error(t, err)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		t.Parallel()

		links, err := qmgoquery.ExtractArticleLinks("<html><body><p>no links</p></body></html>", "https://example.com/", nil)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
