package bishop

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
	"time"

	berrors "github.com/indigo-web/bishop/errors"
	"github.com/indigo-web/bishop/http/headers"
	"github.com/indigo-web/bishop/http/headerutil"
	"github.com/indigo-web/bishop/http/status"
	"github.com/indigo-web/bishop/internal/strutil"
)

// checksumMatches reads the request body once and compares its MD5 digest against the
// Content-MD5 header, for the default (unoverridden) validate-content-checksum callback.
func checksumMatches(ctx *engineCtx) bool {
	if ctx.req.Body == nil {
		return true
	}

	data, err := io.ReadAll(ctx.req.Body)
	if err != nil {
		panic(err)
	}

	sum := md5.Sum(data)
	got := hex.EncodeToString(sum[:])

	return strutil.CmpFold(got, ctx.req.Headers.Value(headers.ContentMD5))
}

// computeVary renders the Vary header: the four negotiation dimensions always run ahead of G7,
// so their header names are always present, followed by whatever the resource itself declares
// through variances.
func computeVary(ctx *engineCtx) {
	all := make([]string, 0, 4+ctx.req.cfg.Headers.Vary)
	all = append(all, headers.Accept, headers.AcceptLanguage, headers.AcceptCharset, headers.AcceptEncoding)
	all = append(all, splitList(ctx.res.handlers.Variances(ctx.req).value)...)

	ctx.resp.SetHeader(headers.Vary, strings.Join(all, ", "))
}

// lastGeneratedETag calls generate-etag and returns its value. The result isn't cached: I13 and
// the later caching pass each invoke the callback again.
func lastGeneratedETag(ctx *engineCtx, h *Handlers) string {
	return h.GenerateETag(ctx.req).value
}

func handleIfUnmodifiedSince(ctx *engineCtx, since time.Time) (node, bool) {
	ctx.req.IfUnmodifiedSince = since
	ctx.req.HasIfUnmodifiedSince = true

	lm := fetchLastModified(ctx)
	if !lm.IsZero() && lm.After(since) {
		return terminate(ctx, status.PreconditionFailed)
	}

	return nH12, false
}

func handleIfModifiedSince(ctx *engineCtx, h *Handlers) (node, bool) {
	value := ctx.req.Headers.Value(headers.IfModifiedSince)
	if len(value) == 0 {
		return nM16, false
	}

	since, ok := headerutil.ParseDate(value)
	if !ok {
		return nM16, false
	}

	ctx.req.IfModifiedSince = since
	ctx.req.HasIfModifiedSince = true

	if since.After(time.Now()) {
		return nM16, false
	}

	lm := fetchLastModified(ctx)
	if lm.After(since) {
		return nM16, false
	}

	return terminate(ctx, status.NotModified)
}

// fetchLastModified calls last-modified at most once per request, caching the parsed result on
// the context for H11's and any later caching-header use.
func fetchLastModified(ctx *engineCtx) time.Time {
	if ctx.hasLastModified {
		return ctx.lastModified
	}

	value := ctx.res.handlers.LastModified(ctx.req).value
	if len(value) > 0 {
		if t, ok := headerutil.ParseDate(value); ok {
			ctx.lastModified = t
		}
	}

	ctx.hasLastModified = true
	return ctx.lastModified
}

// materializeBody resolves the representation responder for the negotiated media type into the
// response, at most once per request.
func materializeBody(ctx *engineCtx) {
	if ctx.bodyMaterialized {
		return
	}
	ctx.bodyMaterialized = true

	responder, ok := ctx.res.responderFor(ctx.req.AcceptableType)
	if !ok {
		return
	}

	if len(ctx.req.AcceptableType) > 0 {
		ctx.resp.ContentType(ctx.req.AcceptableType)
	}

	responder.resolve(ctx.req, ctx.resp)
}

// attachCachingHeaders sets ETag/Last-Modified/Expires on the response for a successful GET-style
// node, if the resource declared them.
func attachCachingHeaders(ctx *engineCtx, h *Handlers) {
	if etag := lastGeneratedETag(ctx, h); len(etag) > 0 {
		ctx.resp.SetHeader(headers.ETag, strutil.Quote(etag))
	}

	if lm := fetchLastModified(ctx); !lm.IsZero() {
		ctx.resp.SetHeader(headers.LastModified, headerutil.FormatDate(lm))
	}

	if expires := h.Expires(ctx.req).value; len(expires) > 0 {
		ctx.resp.SetHeader(headers.Expires, expires)
	}
}

// handlePostDispatch implements N11: either the post-is-create? branch, materializing the new
// entity's body via its own responder and reporting its location, or the plain process-post
// branch.
func handlePostDispatch(ctx *engineCtx, h *Handlers) (node, bool) {
	if h.PostIsCreate(ctx.req).boolValue() {
		return handlePostCreate(ctx, h)
	}

	out := h.ProcessPost(ctx.req)

	switch out.kind {
	case kindStatus:
		return terminate(ctx, out.code)
	case kindBool:
		if out.boolean {
			return terminate(ctx, status.NoContent)
		}
		ctx.resp.Error(berrors.ErrProcessPostFailed)
		return 0, true
	case kindResponse:
		out.partial.merge(ctx.resp)
		if out.partial.Status != nil {
			return 0, true
		}
		return nP11, false
	case kindDecision:
		out.partial.merge(ctx.resp)
		if out.boolean {
			return terminate(ctx, status.NoContent)
		}
		if out.partial.Status != nil {
			return 0, true
		}
		if !out.partial.isZero() {
			return nP11, false
		}
		ctx.resp.Error(berrors.ErrProcessPostFailed)
		return 0, true
	default:
		ctx.resp.Error(berrors.ErrProcessPostFailed)
		return 0, true
	}
}

func handlePostCreate(ctx *engineCtx, h *Handlers) (node, bool) {
	cp := h.CreatePath(ctx.req)
	if cp.kind == kindBool && !cp.boolean || cp.kind == kindValue && cp.value == "" {
		ctx.resp.Error(berrors.ErrNoCreatePath)
		return 0, true
	}

	base := h.BaseURI(ctx.req).value

	var location string
	if len(base) > 0 {
		location = base
	} else {
		location = joinPath(ctx.req.URI, cp.value)
	}

	before := ctx.resp.Status()
	materializeBodyForCreate(ctx)
	after := ctx.resp.Status()

	if after == before {
		ctx.resp.SetHeader(headers.Location, location)
		return terminate(ctx, status.SeeOther)
	}

	return 0, true
}

// materializeBodyForCreate runs the responder for the negotiated type as if against the newly
// created entity, without the once-only guard the read path uses (N11's entity didn't exist
// before this call).
func materializeBodyForCreate(ctx *engineCtx) {
	ctx.bodyMaterialized = true

	responder, ok := ctx.res.responderFor(ctx.req.AcceptableType)
	if !ok {
		return
	}

	if len(ctx.req.AcceptableType) > 0 {
		ctx.resp.ContentType(ctx.req.AcceptableType)
	}

	responder.resolve(ctx.req, ctx.resp)
}

func joinPath(base, suffix string) string {
	if len(suffix) == 0 {
		return base
	}

	if strings.HasSuffix(base, "/") {
		return base + suffix
	}

	return base + "/" + suffix
}
