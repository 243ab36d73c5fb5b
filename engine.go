package bishop

import (
	"strings"
	"time"

	berrors "github.com/indigo-web/bishop/errors"
	"github.com/indigo-web/bishop/http/headers"
	"github.com/indigo-web/bishop/http/headerutil"
	"github.com/indigo-web/bishop/http/method"
	"github.com/indigo-web/bishop/http/status"
	"github.com/indigo-web/bishop/internal/strutil"
	"github.com/indigo-web/bishop/negotiation"
)

// node names one labeled step of the decision graph, per the Webmachine-diagram naming §4.3
// uses. Several nodes whose spec.md transition table folds an "exists?"/"negotiate" pair into a
// single sentence (C3/C4, D4/D5, E5/E6, F6/F7) are implemented as one combined step each; the
// node constant keeps the pair's first label for trace purposes.
type node uint8

const (
	nB13 node = iota
	nB12
	nB11
	nB10
	nB9
	nB9a
	nB9b
	nB8
	nB7
	nB6
	nB5
	nB4
	nB3
	nC3
	nD4
	nE5
	nF6
	nG7
	nG8
	nG9
	nG11
	nH7
	nH10
	nH11
	nH12
	nI12
	nI13
	nJ18
	nK13
	nL13
	nM16
	nM20
	nM20b
	nN11
	nO14
	nO18
	nO18b
	nO20
	nH7Missing
	nI7
	nI4
	nP3
	nK7
	nK5
	nL5
	nM5
	nN5
	nL7
	nM7
	nP11
)

var nodeNames = [...]string{
	"B13", "B12", "B11", "B10", "B9", "B9a", "B9b", "B8", "B7", "B6", "B5", "B4", "B3",
	"C3", "D4", "E5", "F6",
	"G7", "G8", "G9", "G11",
	"H7", "H10", "H11", "H12",
	"I12", "I13",
	"J18",
	"K13",
	"L13",
	"M16", "M20", "M20b",
	"N11",
	"O14", "O18", "O18b", "O20",
	"H7Missing", "I7", "I4", "P3",
	"K7", "K5", "L5", "M5", "N5", "L7", "M7",
	"P11",
}

func (n node) String() string {
	if int(n) < len(nodeNames) {
		return nodeNames[n]
	}

	return "?"
}

// engineCtx is the mutable state threaded through the decision walk: the request, the
// accumulating response, the resource under evaluation, and small scratch bits that don't
// belong on the public Request/Response types.
type engineCtx struct {
	req  *Request
	res  *Resource
	resp *Response

	trace []node

	bodyMaterialized bool
	lastModified     time.Time
	hasLastModified  bool
}

func newEngineCtx(req *Request, res *Resource, resp *Response) *engineCtx {
	return &engineCtx{req: req, res: res, resp: resp, trace: make([]node, 0, req.cfg.Engine.TracePrealloc)}
}

// Trace returns the labels of every decision node visited while servicing the request, in
// visiting order, for diagnostics.
func (ctx *engineCtx) Trace() []node {
	return ctx.trace
}

// terminate finalizes the response with code and signals the walk is done.
func terminate(ctx *engineCtx, code status.Code) (node, bool) {
	ctx.resp.Code(code)
	return 0, true
}

func splitList(value string) []string {
	if len(value) == 0 {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strutil.LStripWS(strutil.RStripWS(p))
		if len(p) > 0 {
			out = append(out, p)
		}
	}

	return out
}

func containsToken(list []string, token string) bool {
	for _, item := range list {
		if strutil.CmpFold(item, token) {
			return true
		}
	}

	return false
}

// headerList joins every occurrence of key into a single comma-separated value, since RFC 9110
// treats repeated header lines under the same field name as equivalent to one comma-joined
// value — relevant for the Accept family, where a client may legally split its offer across
// several lines instead of one.
func headerList(h Headers, key string) string {
	return strutil.Join(h.Values(key), ", ")
}

func unquoteTokens(header string) []string {
	tokens := splitList(header)
	for i, t := range tokens {
		tokens[i] = strutil.Unquote(t)
	}

	return tokens
}

// run drives the decision walk from B13 to termination.
func run(ctx *engineCtx) {
	n := nB13

	for {
		next, done := step(n, ctx)
		ctx.trace = append(ctx.trace, n)

		if done {
			return
		}

		n = next
	}
}

func step(n node, ctx *engineCtx) (node, bool) {
	h := ctx.res.handlers

	switch n {
	case nB13:
		out := h.ServiceAvailable(ctx.req)
		if out.kind == kindResponse || out.kind == kindDecision {
			out.fragment().merge(ctx.resp)
		}
		if !out.boolValue() {
			return terminate(ctx, status.ServiceUnavailable)
		}
		return nB12, false

	case nB12:
		known := splitList(h.KnownMethods(ctx.req).value)
		if !containsToken(known, ctx.req.Method.String()) {
			return terminate(ctx, status.NotImplemented)
		}
		return nB11, false

	case nB11:
		if h.URITooLong(ctx.req).boolValue() {
			return terminate(ctx, status.RequestURITooLong)
		}
		return nB10, false

	case nB10:
		allowed := splitList(h.AllowedMethods(ctx.req).value)
		if !containsToken(allowed, ctx.req.Method.String()) {
			ctx.resp.SetHeader("allow", strings.Join(allowed, ", "))
			return terminate(ctx, status.MethodNotAllowed)
		}
		return nB9, false

	case nB9:
		if ctx.req.Headers.Has(headers.ContentMD5) {
			return nB9a, false
		}
		return nB9b, false

	case nB9a:
		out := h.ValidateContentChecksum(ctx.req)

		var valid bool
		if out.kind == kindValue && out.value == "" {
			valid = checksumMatches(ctx)
		} else {
			valid = out.boolValue()
		}

		if !valid {
			ctx.resp.Code(status.BadRequest).String("content-md5 mismatch")
			return 0, true
		}
		return nB9b, false

	case nB9b:
		if h.MalformedRequest(ctx.req).boolValue() {
			return terminate(ctx, status.BadRequest)
		}
		return nB8, false

	case nB8:
		out := h.IsAuthorized(ctx.req)
		switch out.kind {
		case kindValue:
			ctx.resp.SetHeader(headers.WWWAuthenticate, out.value)
			return terminate(ctx, status.Unauthorized)
		case kindResponse, kindDecision:
			out.fragment().merge(ctx.resp)
			if out.boolValue() {
				return nB7, false
			}
			return terminate(ctx, status.Unauthorized)
		default:
			if out.boolValue() {
				return nB7, false
			}
			return terminate(ctx, status.Unauthorized)
		}

	case nB7:
		if h.Forbidden(ctx.req).boolValue() {
			return terminate(ctx, status.Forbidden)
		}
		return nB6, false

	case nB6:
		if !h.ValidContentHeaders(ctx.req).boolValue() {
			return terminate(ctx, status.NotImplemented)
		}
		return nB5, false

	case nB5:
		if !h.KnownContentType(ctx.req).boolValue() {
			return terminate(ctx, status.UnsupportedMediaType)
		}
		return nB4, false

	case nB4:
		if !h.ValidEntityLength(ctx.req).boolValue() {
			return terminate(ctx, status.RequestEntityTooLarge)
		}
		return nB3, false

	case nB3:
		if ctx.req.Method == method.OPTIONS {
			h.Options(ctx.req).fragment().merge(ctx.resp)
			return terminate(ctx, status.OK)
		}
		return nC3, false

	case nC3:
		offered := ctx.res.contentTypes
		maxTokens := ctx.req.cfg.Negotiation.MaxAcceptTokens
		chosen, ok := negotiation.Select(offered, headerList(ctx.req.Headers, headers.Accept), maxTokens)
		if !ok {
			return terminate(ctx, status.NotAcceptable)
		}
		ctx.req.AcceptableType = chosen
		return nD4, false

	case nD4:
		offered := splitList(h.LanguagesProvided(ctx.req).value)
		maxTokens := ctx.req.cfg.Negotiation.MaxAcceptTokens
		chosen, ok := negotiation.Select(offered, headerList(ctx.req.Headers, headers.AcceptLanguage), maxTokens)
		if !ok {
			return terminate(ctx, status.NotAcceptable)
		}
		ctx.req.AcceptableLanguage = chosen
		return nE5, false

	case nE5:
		offered := splitList(h.CharsetsProvided(ctx.req).value)
		maxTokens := ctx.req.cfg.Negotiation.MaxAcceptTokens
		chosen, ok := negotiation.Select(offered, headerList(ctx.req.Headers, headers.AcceptCharset), maxTokens)
		if !ok {
			return terminate(ctx, status.NotAcceptable)
		}
		ctx.req.AcceptableCharset = chosen
		return nF6, false

	case nF6:
		offered := splitList(h.EncodingsProvided(ctx.req).value)
		chosen, ok := negotiation.SelectEncoding(
			offered, headerList(ctx.req.Headers, headers.AcceptEncoding), ctx.req.cfg.Negotiation.IdentityQuality,
			ctx.req.cfg.Negotiation.MaxAcceptTokens,
		)
		if !ok {
			return terminate(ctx, status.NotAcceptable)
		}
		ctx.req.AcceptableEncoding = chosen
		return nG7, false

	case nG7:
		computeVary(ctx)
		if h.ResourceExists(ctx.req).boolValue() {
			return nG8, false
		}
		return nH7Missing, false

	case nG8:
		if ctx.req.Headers.Has(headers.IfMatch) {
			return nG9, false
		}
		return nH10, false

	case nG9:
		if strutil.RStripWS(strutil.LStripWS(ctx.req.Headers.Value(headers.IfMatch))) == "*" {
			return nH10, false
		}
		return nG11, false

	case nG11:
		etag := strutil.Unquote(h.GenerateETag(ctx.req).value)
		tokens := unquoteTokens(ctx.req.Headers.Value(headers.IfMatch))
		if containsToken(tokens, etag) {
			return nH10, false
		}
		return terminate(ctx, status.PreconditionFailed)

	case nH10:
		value := ctx.req.Headers.Value(headers.IfUnmodifiedSince)
		if len(value) == 0 {
			return nH12, false
		}
		since, ok := headerutil.ParseDate(value)
		if !ok {
			return nH12, false
		}
		return handleIfUnmodifiedSince(ctx, since)

	case nH12:
		if ctx.req.Headers.Has(headers.IfNoneMatch) {
			return nI12, false
		}
		return nL13, false

	case nI12:
		if strutil.RStripWS(strutil.LStripWS(ctx.req.Headers.Value(headers.IfNoneMatch))) == "*" {
			return nJ18, false
		}
		return nI13, false

	case nI13:
		etag := strutil.Unquote(lastGeneratedETag(ctx, h))
		tokens := unquoteTokens(ctx.req.Headers.Value(headers.IfNoneMatch))
		if containsToken(tokens, etag) {
			return nK13, false
		}
		return nL13, false

	case nJ18, nK13:
		if ctx.req.Method == method.GET || ctx.req.Method == method.HEAD {
			return terminate(ctx, status.NotModified)
		}
		return terminate(ctx, status.PreconditionFailed)

	case nL13:
		return handleIfModifiedSince(ctx, h)

	case nM16:
		switch ctx.req.Method {
		case method.DELETE:
			return nM20, false
		case method.POST:
			return nN11, false
		case method.PUT:
			return nO14, false
		default:
			return nO18, false
		}

	case nM20:
		if !h.DeleteResource(ctx.req).boolValue() {
			ctx.resp.Error(berrors.ErrDeleteFailed)
			return 0, true
		}
		return nM20b, false

	case nM20b:
		if h.DeleteCompleted(ctx.req).boolValue() {
			return nO20, false
		}
		return terminate(ctx, status.Accepted)

	case nN11:
		return handlePostDispatch(ctx, h)

	case nO14:
		if h.IsConflict(ctx.req).boolValue() {
			return terminate(ctx, status.Conflict)
		}
		return nP11, false

	case nO18:
		materializeBody(ctx)
		attachCachingHeaders(ctx, h)
		return nO18b, false

	case nO18b:
		if h.MultipleRepresentations(ctx.req).boolValue() {
			return terminate(ctx, status.MultipleChoices)
		}
		return terminate(ctx, status.OK)

	case nO20:
		materializeBody(ctx)
		if len(ctx.resp.Body()) == 0 {
			return terminate(ctx, status.NoContent)
		}
		return nO18, false

	case nH7Missing:
		if ctx.req.Headers.Has(headers.IfMatch) {
			return terminate(ctx, status.PreconditionFailed)
		}
		return nI7, false

	case nI7:
		if ctx.req.Method == method.PUT {
			return nI4, false
		}
		return nK7, false

	case nI4:
		if h.IsConflict(ctx.req).boolValue() {
			return terminate(ctx, status.Conflict)
		}
		return nP3, false

	case nP3:
		materializeBody(ctx)
		return nP11, false

	case nK7:
		if h.PreviouslyExisted(ctx.req).boolValue() {
			return nK5, false
		}
		return nL7, false

	case nK5:
		out := h.MovedPermanently(ctx.req)
		if out.kind == kindValue && out.value != "" {
			ctx.resp.SetHeader(headers.Location, out.value)
			return terminate(ctx, status.MovedPermanently)
		}
		return nL5, false

	case nL5:
		out := h.MovedTemporarily(ctx.req)
		if out.kind == kindValue && out.value != "" {
			ctx.resp.SetHeader(headers.Location, out.value)
			return terminate(ctx, status.TemporaryRedirect)
		}
		return nM5, false

	case nM5:
		if ctx.req.Method == method.POST {
			return nN5, false
		}
		return terminate(ctx, status.Gone)

	case nN5:
		if h.AllowMissingPost(ctx.req).boolValue() {
			return nN11, false
		}
		return terminate(ctx, status.Gone)

	case nL7:
		if ctx.req.Method == method.POST {
			return nM7, false
		}
		return terminate(ctx, status.NotFound)

	case nM7:
		if h.AllowMissingPost(ctx.req).boolValue() {
			return nN11, false
		}
		return terminate(ctx, status.NotFound)

	case nP11:
		if ctx.resp.Headers().Has(headers.Location) {
			return terminate(ctx, status.Created)
		}
		return nO20, false
	}

	panic("bishop: unreachable decision node")
}
