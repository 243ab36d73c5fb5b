package config

import (
	"time"

	"github.com/indigo-web/bishop/encoding"
	"github.com/indigo-web/bishop/http/mime"
)

type (
	HeadersPrealloc struct {
		// Response is the initial capacity of the kv.Storage backing an outgoing response's
		// header set.
		Response int
		// Vary is the extra capacity, beyond the four negotiation header names, reserved for the
		// resource's own variances when G7 builds the Vary header.
		Vary int
	}

	Negotiation struct {
		// DefaultCharset is the charset parameter the response assembler puts on Content-Type
		// when no charset was negotiated and the media type has no mime.DefaultCharset entry.
		// The default charsets-provided callback offers utf8 on its own and doesn't read it.
		DefaultCharset mime.Charset
		// IdentityQuality is the quality value implicitly assigned to the identity coding
		// when a client's Accept-Encoding doesn't mention it explicitly.
		IdentityQuality float64
		// MaxAcceptTokens bounds how many comma-separated offers of an Accept-family header
		// negotiation considers; offers beyond the bound are dropped before ranking.
		MaxAcceptTokens int
	}

	Cookies struct {
		// Prealloc is the initial kv.Storage capacity used for a parsed Cookie jar.
		Prealloc int
	}

	Engine struct {
		// TracePrealloc is the initial capacity of the slice recording which decision nodes
		// were visited while servicing a request, used for diagnostics.
		TracePrealloc int
		// RequestTimeout is a time budget for a host that bounds request handling itself. The
		// engine never reads it: Run does not time out or abandon a callback chain.
		RequestTimeout time.Duration
	}
)

// Config holds settings used across the decision engine and its supporting packages:
// preallocation sizes, negotiation defaults, and wire-format constants.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Headers     HeadersPrealloc
	Negotiation Negotiation
	Cookies     Cookies
	Engine      Engine
	// Encoders is the content-encoding table the response assembler applies once the F6/F7
	// negotiation node has chosen a coding. Resources declaring their own encodings-provided
	// list must keep their tokens present here for the assembler to find an encoder for them.
	Encoders map[string]encoding.Encoder
}

// Default returns a config with conservative, well-balanced defaults.
func Default() *Config {
	return &Config{
		Headers: HeadersPrealloc{
			Response: 8,
			Vary:     4,
		},
		Negotiation: Negotiation{
			DefaultCharset:  mime.UTF8,
			IdentityQuality: 0.1,
			MaxAcceptTokens: 20,
		},
		Cookies: Cookies{
			Prealloc: 5,
		},
		Engine: Engine{
			TracePrealloc:  32,
			RequestTimeout: 30 * time.Second,
		},
		Encoders: encoding.Default(),
	}
}
