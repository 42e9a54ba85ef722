package quotemill_test

import (
	"testing"

	"github.com/hboone/quotemill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyResolverChain(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty key wins", func(t *testing.T) {
		t.Parallel()

		chain := quotemill.KeyResolverChain{
			quotemill.StaticKey(""),
			quotemill.StaticKey("sk-second"),
			quotemill.StaticKey("sk-third"),
		}
		key, err := chain.ResolveKey()
		require.NoError(t, err)
		assert.Equal(t, "sk-second", key)
	})

	t.Run("resolver errors are skipped", func(t *testing.T) {
		t.Parallel()

		chain := quotemill.KeyResolverChain{
			quotemill.KeyResolverFunc(func() (string, error) {
				return "", quotemill.Errorf(quotemill.ENOTFOUND, "no key file")
			}),
			quotemill.StaticKey("sk-fallback"),
		}
		key, err := chain.ResolveKey()
		require.NoError(t, err)
		assert.Equal(t, "sk-fallback", key)
	})

	t.Run("exhausted chain is a configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := quotemill.KeyResolverChain{quotemill.StaticKey("")}.ResolveKey()
		require.Error(t, err)
		assert.Equal(t, quotemill.EINVALID, quotemill.ErrorCode(err))
	})
}
