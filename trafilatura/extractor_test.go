package trafilatura_test

import (
	"testing"

	"github.com/hboone/quotemill/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>On Writing Well</title></head>
<body>
	<nav><a href="/">Home</a><a href="/archive">Archive</a></nav>
	<article>
		<h1>On Writing Well</h1>
		<p>Clear writing is the product of clear thinking, and clear thinking
		rarely happens by accident. It takes deliberate effort to strip a
		sentence down to its cleanest components.</p>
		<p>Every word that serves no function, every long word that could be a
		short word, every adverb that carries the same meaning already present
		in the verb - these are the thousand and one adulterants that weaken
		the strength of a sentence.</p>
	</article>
	<footer>Copyright 2024. All rights reserved.</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article prose and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage)
		require.NoError(t, err)

		assert.Contains(t, result.ContentHTML, "clear thinking")
		assert.Contains(t, result.ContentHTML, "adulterants")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024")
	})

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage)
		require.NoError(t, err)
		assert.Equal(t, "On Writing Well", result.Title)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("")
		require.Error(t, err)
	})
}
