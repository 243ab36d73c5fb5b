package bishop

import (
	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/status"
	"github.com/indigo-web/utils/uf"
)

// Partial is a response fragment a callback or responder may return alongside its decision,
// mergeable into the accumulating Response (§3, §4.4). Nil fields are left untouched by merge;
// a typed Go Partial stands in for the source's dynamically-shaped partial response map.
type Partial struct {
	Status  *status.Code
	Headers map[string][]string
	Body    []byte
	HasBody bool
	Cookies []cookie.Cookie
}

// WithStatus returns a Partial overriding the response's status code.
func WithStatus(code status.Code) Partial {
	return Partial{Status: &code}
}

// WithHeader returns a Partial setting a single header.
func WithHeader(key string, values ...string) Partial {
	return Partial{Headers: map[string][]string{key: values}}
}

// WithBody returns a Partial overriding the response body, without copying body's bytes.
func WithBody(body string) Partial {
	return Partial{Body: uf.S2B(body), HasBody: true}
}

// WithCookies returns a Partial adding one or more cookies to the response via Set-Cookie.
func WithCookies(cookies ...cookie.Cookie) Partial {
	return Partial{Cookies: cookies}
}

// merge applies p onto resp, key-by-key: a nil field is left alone ("keep left"), anything else
// overwrites whatever is already there ("right wins"), per §4.4's merge rule. Cookies are the
// exception: they are appended to the ones already queued.
func (p Partial) merge(resp *Response) {
	if p.Status != nil {
		resp.Code(*p.Status)
	}

	for key, values := range p.Headers {
		if values == nil {
			continue
		}

		resp.headers.Delete(key)
		resp.Header(key, values...)
	}

	if p.HasBody {
		resp.Bytes(p.Body)
	}

	if len(p.Cookies) > 0 {
		resp.Cookie(p.Cookies...)
	}
}

// isZero reports whether p carries no overrides at all.
func (p Partial) isZero() bool {
	return p.Status == nil && p.Headers == nil && !p.HasBody && len(p.Cookies) == 0
}
