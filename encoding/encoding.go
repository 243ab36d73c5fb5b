// Package encoding wraps http/codec's one-shot compressors behind the shape §4.1 describes for
// a resource's encodings-provided table: a plain name -> encoder mapping.
package encoding

import (
	"github.com/indigo-web/bishop/http/codec"
	"github.com/indigo-web/bishop/negotiation"
)

// Encoder compresses a fully materialized response body under its own coding token.
type Encoder func(body []byte) ([]byte, error)

// Default is the encoder table config.Default installs as Config.Encoders: identity plus every
// codec klauspost/compress backs. The response assembler looks the negotiated coding up here;
// which codings a resource offers comes from its encodings-provided callback, whose default
// offers none.
func Default() map[string]Encoder {
	return map[string]Encoder{
		negotiation.Identity: func(body []byte) ([]byte, error) { return body, nil },
		"gzip":               codec.NewGZIP().Encode,
		"deflate":            codec.NewDeflate().Encode,
		"zstd":               codec.NewZSTD().Encode,
	}
}

// Tokens returns the keys of a resource's encodings-provided table, in map order. Callers
// negotiating encoding must supply offered order explicitly where order matters; Go maps don't
// preserve insertion order, so resources that care about tie-breaking should build the offered
// slice themselves rather than relying on Tokens' iteration order.
func Tokens(provided map[string]Encoder) []string {
	tokens := make([]string, 0, len(provided))
	for token := range provided {
		tokens = append(tokens, token)
	}

	return tokens
}
