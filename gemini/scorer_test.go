package gemini_test

import (
	"testing"

	"github.com/hboone/quotemill"
	"github.com/hboone/quotemill/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed excerpts", func(t *testing.T) {
		t.Parallel()

		payload := `{"excerpts": [
			{"is_worthy": true, "score": 8, "category": "card", "tone": "persuasive",
			 "canonical_text": "Strong line.", "short_variant": "Strong.",
			 "card_variant": "Strong line", "caption_variant": "A strong line indeed."}
		]}`

		candidates, malformed, err := gemini.ParseCandidates([]byte(payload))
		require.NoError(t, err)
		assert.False(t, malformed)
		require.Len(t, candidates, 1)
		assert.True(t, candidates[0].Worthy)
		assert.Equal(t, 8, candidates[0].Score)
		assert.Equal(t, quotemill.CategoryCard, candidates[0].Category)
		assert.Equal(t, "Strong line.", candidates[0].CanonicalText)
	})

	t.Run("well-formed empty array yields zero candidates", func(t *testing.T) {
		t.Parallel()

		candidates, malformed, err := gemini.ParseCandidates([]byte(`{"excerpts": []}`))
		require.NoError(t, err)
		assert.False(t, malformed)
		assert.Empty(t, candidates)
	})

	t.Run("caps candidates at three", func(t *testing.T) {
		t.Parallel()

		payload := `{"excerpts": [
			{"is_worthy": true, "score": 9, "canonical_text": "one"},
			{"is_worthy": true, "score": 8, "canonical_text": "two"},
			{"is_worthy": true, "score": 7, "canonical_text": "three"},
			{"is_worthy": true, "score": 6, "canonical_text": "four"}
		]}`

		candidates, malformed, err := gemini.ParseCandidates([]byte(payload))
		require.NoError(t, err)
		assert.False(t, malformed)
		assert.Len(t, candidates, 3)
		assert.Equal(t, "one", candidates[0].CanonicalText)
	})

	t.Run("missing excerpts field is malformed, not fatal", func(t *testing.T) {
		t.Parallel()

		candidates, malformed, err := gemini.ParseCandidates([]byte(`{"quotes": []}`))
		require.NoError(t, err)
		assert.True(t, malformed)
		assert.Empty(t, candidates)
	})

	t.Run("non-array excerpts field is malformed, not fatal", func(t *testing.T) {
		t.Parallel()

		candidates, malformed, err := gemini.ParseCandidates([]byte(`{"excerpts": "nope"}`))
		require.NoError(t, err)
		assert.True(t, malformed)
		assert.Empty(t, candidates)
	})

	t.Run("invalid JSON is a fatal parse failure", func(t *testing.T) {
		t.Parallel()

		_, _, err := gemini.ParseCandidates([]byte(`not json at all`))
		require.Error(t, err)
		assert.Equal(t, quotemill.EUNAVAILABLE, quotemill.ErrorCode(err))
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Some chunk text.")
	assert.Contains(t, prompt, "Some chunk text.")
	assert.Contains(t, prompt, "up to 3")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()
	require.NotNil(t, config.SystemInstruction)
	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	assert.Contains(t, config.ResponseSchema.Properties, "excerpts")
}
