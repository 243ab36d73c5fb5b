package bishop

import (
	"github.com/indigo-web/bishop/config"
	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/mime"
	"github.com/indigo-web/bishop/http/status"
	"github.com/indigo-web/bishop/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Response is the accumulator the decision engine builds incrementally as it walks the graph.
// It is finalized by the response assembler before being returned from Run.
type Response struct {
	code        status.Code
	headers     *kv.Storage
	body        []byte
	contentType mime.MIME
	cookies     []cookie.Cookie
}

// NewResponse returns a Response with status 200 and pre-allocated header storage, as the
// engine entry point does before any node runs.
func NewResponse(cfg *config.Config) *Response {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Response{
		code:    status.OK,
		headers: kv.NewPrealloc(cfg.Headers.Response),
	}
}

// Code sets the response's status code.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// Status returns the response's current status code.
func (r *Response) Status() status.Code {
	return r.code
}

// ContentType sets the Content-Type media type, independent of its charset parameter.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.contentType = value
	return r
}

// Header sets header values under key, appending to whatever is already stored there.
func (r *Response) Header(key string, values ...string) *Response {
	for _, value := range values {
		r.headers.Add(key, value)
	}

	return r
}

// SetHeader replaces whatever is stored under key with a single value.
func (r *Response) SetHeader(key, value string) *Response {
	r.headers.Set(key, value)
	return r
}

// Headers exposes the underlying header storage, for the response assembler and tests.
func (r *Response) Headers() *kv.Storage {
	return r.headers
}

// String sets the response body to str, without copying its bytes.
func (r *Response) String(str string) *Response {
	return r.Bytes(uf.S2B(str))
}

// Bytes sets the response body to body.
func (r *Response) Bytes(body []byte) *Response {
	r.body = body
	return r
}

// Body returns the currently accumulated response body.
func (r *Response) Body() []byte {
	return r.body
}

// Write implements io.Writer, appending to the accumulated body. It lets json-iterator stream
// directly into the response without an intermediate allocation.
func (r *Response) Write(b []byte) (n int, err error) {
	r.body = append(r.body, b...)
	return len(b), nil
}

// TryJSON marshals model into the response body via json-iterator, setting Content-Type to
// application/json.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.body = r.body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON behaves like TryJSON, except a marshal error is folded into the response via Error
// instead of being returned.
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Cookie queues Set-Cookie values to be rendered at assembly time.
func (r *Response) Cookie(cookies ...cookie.Cookie) *Response {
	r.cookies = append(r.cookies, cookies...)
	return r
}

// Cookies returns the cookies queued so far.
func (r *Response) Cookies() []cookie.Cookie {
	return r.cookies
}

// Error sets the response's status and body from err. An status.HTTPError's own code is used;
// otherwise the first of code defaults to 500.
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	if httpErr, ok := err.(status.HTTPError); ok {
		return r.Code(httpErr.Code).String(httpErr.Message)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		c = code[0]
	}

	return r.Code(c).String(err.Error())
}

// Clear resets the response to its freshly constructed state.
func (r *Response) Clear() *Response {
	r.code = status.OK
	r.headers.Clear()
	r.body = nil
	r.contentType = ""
	r.cookies = r.cookies[:0]

	return r
}
