package bishop

import (
	"fmt"
	"log"

	"github.com/indigo-web/bishop/config"
	"github.com/indigo-web/bishop/http/cookie"
	"github.com/indigo-web/bishop/http/headers"
	"github.com/indigo-web/bishop/http/headerutil"
	"github.com/indigo-web/bishop/http/mime"
	"github.com/indigo-web/bishop/http/status"
)

// Logger is the minimal interface Run needs to report decision-engine panics and error
// resources, satisfied by *log.Logger. Callback protocol violations aren't logged.
type Logger interface {
	Printf(fmt string, v ...any)
}

// Run drives resource through the decision graph against request and returns the assembled
// response. A panic anywhere in the walk (a panicking callback, an I/O failure while reading the
// request body) is recovered here, logged, and turned into a 500 response; the decision nodes
// themselves make no attempt to recover. Callback protocol violations don't panic: the node that
// detects one sets a 500 with the violation's message as the body.
func Run(req *Request, res *Resource, loggers ...Logger) (resp *Response) {
	resp = NewResponse(req.cfg)

	var ctx *engineCtx

	defer func() {
		if r := recover(); r != nil {
			for _, l := range loggersOrDefault(loggers) {
				l.Printf("bishop: recovered panic servicing %s %s [trace %s, visited %v]: %v",
					req.Method, req.URI, req.TraceID, visitedNodes(ctx), r)
			}
			resp.Clear().Code(status.InternalServerError).String(fmt.Sprintf("internal server error [trace %s]: %v", req.TraceID, r))
		}
	}()

	if res.isHalt {
		resp.Code(res.haltStatus)
		res.haltFragment.merge(resp)
		return resp
	}

	if res.isError {
		for _, l := range loggersOrDefault(loggers) {
			l.Printf("bishop: error resource servicing %s %s: %v", req.Method, req.URI, res.errValue)
		}
		resp.Error(res.errValue)
		return resp
	}

	ctx = newEngineCtx(req, res, resp)
	run(ctx)

	assemble(ctx, req.cfg)

	return resp
}

// visitedNodes renders the decision nodes visited so far, for the panic-recovery log line. ctx
// is nil if the panic struck before the engine walk even started.
func visitedNodes(ctx *engineCtx) []node {
	if ctx == nil {
		return nil
	}

	return ctx.Trace()
}

func loggersOrDefault(loggers []Logger) []Logger {
	if len(loggers) == 0 {
		return []Logger{log.Default()}
	}

	return loggers
}

// assemble finalizes the response after the decision walk terminates: it resolves the
// Content-Type's charset parameter (unless a responder already set an explicit Content-Type
// header of its own), applies the negotiated content-encoding, and re-emits every header name
// in its canonical Title-Case form (§4.4).
func assemble(ctx *engineCtx, cfg *config.Config) {
	resp := ctx.resp

	if resp.contentType != "" && !resp.headers.Has("content-type") {
		charset := ctx.req.AcceptableCharset
		if len(charset) == 0 {
			if def, ok := mime.DefaultCharset[resp.contentType]; ok {
				charset = def
			} else {
				charset = string(cfg.Negotiation.DefaultCharset)
			}
		}
		resp.SetHeader("content-type", mime.WithCharset(resp.contentType, mime.Charset(charset)))
	}

	if enc := ctx.req.AcceptableEncoding; len(enc) > 0 {
		if encoder, ok := cfg.Encoders[enc]; ok {
			if body, err := encoder(resp.Body()); err == nil {
				resp.Bytes(body)
				resp.SetHeader("content-encoding", enc)
			}
		}
	}

	for _, c := range resp.Cookies() {
		resp.Header(headers.SetCookie, cookie.Render(c))
	}

	titleCaseHeaders(resp)
}

func titleCaseHeaders(resp *Response) {
	pairs := resp.headers.Expose()
	for i, p := range pairs {
		pairs[i].Key = headerutil.TitleCase(p.Key)
	}
}
