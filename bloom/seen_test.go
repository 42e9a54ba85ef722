package bloom_test

import (
	"fmt"
	"testing"

	"github.com/hboone/quotemill/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenList_MarkSeen_rejects_duplicates(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenList(1000, 0.01)

	assert.True(t, s.MarkSeen("https://example.com/posts/one"), "first mark should succeed")
	assert.False(t, s.MarkSeen("https://example.com/posts/one"), "duplicate should be rejected")
}

func TestSeenList_strips_fragments(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenList(1000, 0.01)

	assert.True(t, s.MarkSeen("https://example.com/posts/one#intro"))
	assert.False(t, s.MarkSeen("https://example.com/posts/one#conclusion"),
		"URLs differing only by fragment are duplicates")
	assert.True(t, s.Seen("https://example.com/posts/one"))
}

func TestSeenList_Seen_unmarked_URL(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenList(1000, 0.01)

	assert.False(t, s.Seen("https://example.com/never-marked"))
}

func TestSeenList_Count_approximates_marked(t *testing.T) {
	t.Parallel()

	s := bloom.NewSeenList(10000, 0.01)

	for i := 0; i < 100; i++ {
		s.MarkSeen(fmt.Sprintf("https://example.com/posts/%d", i))
	}

	count := s.Count()
	assert.InDelta(t, 100, float64(count), 5, "approximate count should be close to 100")
}
