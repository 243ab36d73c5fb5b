package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table := Default()

	for _, token := range []string{"identity", "gzip", "deflate", "zstd"} {
		encoder, ok := table[token]
		require.True(t, ok, token)

		out, err := encoder([]byte("payload"))
		require.NoError(t, err)
		require.NotEmpty(t, out)
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens(Default())
	require.Len(t, tokens, 4)
	require.Contains(t, tokens, "identity")
}
