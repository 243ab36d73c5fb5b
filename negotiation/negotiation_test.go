package negotiation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		chosen, ok := Select([]string{"text/plain"}, "text/html,application/xhtml+xml;q=0.9")
		require.False(t, ok)
		require.Empty(t, chosen)
	})

	t.Run("wildcard accept", func(t *testing.T) {
		chosen, ok := Select([]string{"text/html"}, "*/*")
		require.True(t, ok)
		require.Equal(t, "text/html", chosen)
	})

	t.Run("q value disqualifies", func(t *testing.T) {
		chosen, ok := Select([]string{"text/html"}, "text/html;q=0")
		require.False(t, ok)
		require.Empty(t, chosen)
	})

	t.Run("absent header picks first offered", func(t *testing.T) {
		chosen, ok := Select([]string{"en", "fr"}, "")
		require.True(t, ok)
		require.Equal(t, "en", chosen)
	})

	t.Run("empty offered always succeeds", func(t *testing.T) {
		chosen, ok := Select(nil, "en,*;q=0.8")
		require.True(t, ok)
		require.Empty(t, chosen)
	})

	t.Run("acceptable rank dominates offered rank", func(t *testing.T) {
		chosen, ok := Select([]string{"text/plain", "text/html"}, "text/html,text/plain;q=0.5")
		require.True(t, ok)
		require.Equal(t, "text/html", chosen)
	})

	t.Run("maxTokens truncates the offer list", func(t *testing.T) {
		// Capping at one token before ranking keeps only text/html and drops text/plain, so
		// text/html is chosen when offered, and nothing matches when only text/plain is offered.
		chosen, ok := Select([]string{"text/plain", "text/html"}, "text/html,text/plain;q=0.9", 1)
		require.True(t, ok)
		require.Equal(t, "text/html", chosen)

		chosen, ok = Select([]string{"text/plain"}, "text/html,text/plain;q=0.9", 1)
		require.False(t, ok)
		require.Empty(t, chosen)
	})
}

func TestSelectEncoding(t *testing.T) {
	t.Run("identity implicitly acceptable", func(t *testing.T) {
		chosen, ok := SelectEncoding([]string{Identity, "gzip"}, "gzip;q=0", 0.1)
		require.True(t, ok)
		require.Equal(t, Identity, chosen)
	})

	t.Run("client explicitly rejects identity", func(t *testing.T) {
		_, ok := SelectEncoding([]string{Identity}, "identity;q=0,gzip", 0.1)
		require.False(t, ok)
	})

	t.Run("gzip preferred over identity", func(t *testing.T) {
		chosen, ok := SelectEncoding([]string{Identity, "gzip"}, "gzip", 0.1)
		require.True(t, ok)
		require.Equal(t, "gzip", chosen)
	})
}
