package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestGZIP(t *testing.T) {
	encoded, err := NewGZIP().Encode([]byte("Hello, world!"))
	require.NoError(t, err)

	r, err := gzip.NewReader(bytes.NewReader(encoded))
	require.NoError(t, err)

	decoded, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", string(decoded))
}

func TestDeflate(t *testing.T) {
	encoded, err := NewDeflate().Encode([]byte("Hello, world! Lorem ipsum."))
	require.NoError(t, err)
	require.NotEmpty(t, encoded)
}

func TestZSTD(t *testing.T) {
	encoded, err := NewZSTD().Encode([]byte("Hello, world!"))
	require.NoError(t, err)

	d, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer d.Close()

	decoded, err := d.DecodeAll(encoded, nil)
	require.NoError(t, err)
	require.Equal(t, "Hello, world!", string(decoded))
}

func TestTokens(t *testing.T) {
	require.Equal(t, "gzip", NewGZIP().Token())
	require.Equal(t, "deflate", NewDeflate().Token())
	require.Equal(t, "zstd", NewZSTD().Token())
}
