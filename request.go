package bishop

import (
	"io"
	"time"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/bishop/config"
	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/method"
	"github.com/indigo-web/bishop/kv"
)

// Headers is the case-insensitive storage backing both Request.Headers and the accumulating
// Response headers.
type Headers = *kv.Storage

// Request represents an inbound HTTP request, prepared by the host and handed to Run once. The
// engine never reads from the wire itself; body, if any, must already be a finite readable
// byte source by the time Run is called.
type Request struct {
	// Method is the request's verb.
	Method method.Method
	// URI is the request path, excluding query string.
	URI string
	// Headers holds the request's header pairs. Keys are expected lower-case on ingress,
	// though lookups are case-insensitive regardless.
	Headers Headers
	// Body is the request's message body, if any. It is consumed at most once, by B9a when
	// validating a Content-MD5 checksum.
	Body io.Reader
	// PathInfo carries the unmatched remainder of the path when a router sits in front of the
	// engine (§6).
	PathInfo string
	// TraceID opaquely correlates this request with its decision-walk trace and, should Run
	// recover a panic, the 500 response and log line it produces. It plays no role in routing
	// or content negotiation.
	TraceID string

	// The fields below are scratch space the engine populates as it negotiates each dimension.
	AcceptableType       string
	AcceptableLanguage   string
	AcceptableCharset    string
	AcceptableEncoding   string
	IfModifiedSince      time.Time
	HasIfModifiedSince   bool
	IfUnmodifiedSince    time.Time
	HasIfUnmodifiedSince bool

	jar cookie.Jar
	cfg *config.Config
}

// NewRequest builds a Request ready to be passed to Run.
func NewRequest(cfg *config.Config, m method.Method, uri string, headers Headers, body io.Reader) *Request {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Request{
		Method:  m,
		URI:     uri,
		Headers: headers,
		Body:    body,
		TraceID: uniuri.NewLen(8),
		cfg:     cfg,
	}
}

// Cookies lazily parses the request's Cookie header(s) into a jar. The jar is cached and
// reused across calls within the same request.
func (r *Request) Cookies() (cookie.Jar, error) {
	if r.jar == nil {
		r.jar = cookie.NewJarPreAlloc(r.cfg.Cookies.Prealloc)
	}

	r.jar.Clear()

	for value := range r.Headers.Values("cookie") {
		if err := cookie.Parse(r.jar, value); err != nil {
			return nil, err
		}
	}

	return r.jar, nil
}
