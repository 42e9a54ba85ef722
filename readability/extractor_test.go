package readability_test

import (
	"testing"

	"github.com/hboone/quotemill/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts content from a feed fragment", func(t *testing.T) {
		t.Parallel()

		fragment := `<p>Discipline is choosing between what you want now and what
		you want most. The choice is rarely dramatic; it is made in small,
		unglamorous moments repeated over years.</p>
		<p>Nobody drifts into excellence. People drift into mediocrity and
		then wonder how they got there.</p>`

		result, err := readability.NewExtractor().Extract(fragment)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "unglamorous moments")
		assert.Contains(t, result.ContentHTML, "drift into mediocrity")
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract(" ")
		require.Error(t, err)
	})
}
