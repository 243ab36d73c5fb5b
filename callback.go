package bishop

import "github.com/indigo-web/bishop/http/status"

// callbackKind tags which shape a CallbackOut carries, per §4.1 and the tagged-variant design
// note in §9.
type callbackKind uint8

const (
	kindBool callbackKind = iota
	kindStatus
	kindValue
	kindResponse
	kindDecision
)

// CallbackOut is the polymorphic result every resource callback returns: a boolean decision, a
// forced status code, a string (WWW-Authenticate/Location/create-path value), a partial response
// fragment, or a (decision, fragment) pair. Each decision node destructures only the shapes its
// own callback contract allows (§4.1); a node that reads only a boolean takes a forced status or
// a string as false.
type CallbackOut struct {
	kind    callbackKind
	boolean bool
	code    status.Code
	value   string
	partial Partial
}

// Bool wraps a plain boolean decision.
func Bool(b bool) CallbackOut {
	return CallbackOut{kind: kindBool, boolean: b}
}

// ForceStatus wraps a forced status code, overriding the node's own default transition.
func ForceStatus(code status.Code) CallbackOut {
	return CallbackOut{kind: kindStatus, code: code}
}

// Value wraps a string result (a WWW-Authenticate challenge, a redirect Location, a create-path
// fragment, or a base-uri).
func Value(s string) CallbackOut {
	return CallbackOut{kind: kindValue, value: s}
}

// Response wraps a partial response fragment, read as boolean true. The fragment is merged into
// the accumulator only where the engine merges callback fragments: service-available? (B13),
// is-authorized? (B8), options (B3) and process-post (N11). Every other node reads only the
// decision and drops the fragment.
func Response(p Partial) CallbackOut {
	return CallbackOut{kind: kindResponse, partial: p}
}

// Decision wraps a (boolean, fragment) pair: the boolean drives the transition. As with
// Response, the fragment is merged only at B13, B8, B3 and N11, whichever way the decision goes
// there; every other node drops it.
func Decision(b bool, p Partial) CallbackOut {
	return CallbackOut{kind: kindDecision, boolean: b, partial: p}
}

// boolValue extracts the plain decision a node should act on, for callback contracts that only
// ever accept a boolean (possibly wrapped in Response/Decision). Callers that accept additional
// shapes (string, forced status) destructure kind directly instead of calling this.
func (c CallbackOut) boolValue() bool {
	switch c.kind {
	case kindResponse:
		return true
	case kindDecision:
		return c.boolean
	default:
		return c.boolean
	}
}

// fragment extracts whatever partial response the callback attached, or the zero Partial.
func (c CallbackOut) fragment() Partial {
	switch c.kind {
	case kindResponse, kindDecision:
		return c.partial
	default:
		return Partial{}
	}
}

// Handler is a single resource decision callback.
type Handler func(*Request) CallbackOut

func alwaysTrue(*Request) CallbackOut  { return Bool(true) }
func alwaysFalse(*Request) CallbackOut { return Bool(false) }
func emptyValue(*Request) CallbackOut  { return Value("") }

// Handlers is a resource's full set of decision callbacks. A zero-value field means "use the
// default" — NewResource merges a caller's overrides atop DefaultHandlers.
type Handlers struct {
	ServiceAvailable        Handler
	KnownMethods            Handler
	URITooLong              Handler
	AllowedMethods          Handler
	ValidateContentChecksum Handler
	MalformedRequest        Handler
	IsAuthorized            Handler
	Forbidden               Handler
	ValidContentHeaders     Handler
	KnownContentType        Handler
	ValidEntityLength       Handler
	Options                 Handler
	LanguagesProvided       Handler
	CharsetsProvided        Handler
	EncodingsProvided       Handler
	Variances               Handler
	ResourceExists          Handler
	GenerateETag            Handler
	LastModified            Handler
	Expires                 Handler
	MovedPermanently        Handler
	MovedTemporarily        Handler
	PreviouslyExisted       Handler
	AllowMissingPost        Handler
	DeleteResource          Handler
	DeleteCompleted         Handler
	PostIsCreate            Handler
	CreatePath              Handler
	BaseURI                 Handler
	ProcessPost             Handler
	IsConflict              Handler
	MultipleRepresentations Handler
}

// DefaultHandlers returns the handler table described by the "Default" column of §4.1.
func DefaultHandlers() Handlers {
	return Handlers{
		ServiceAvailable:        alwaysTrue,
		KnownMethods:            defaultKnownMethods,
		URITooLong:              alwaysFalse,
		AllowedMethods:          defaultAllowedMethods,
		ValidateContentChecksum: func(*Request) CallbackOut { return Value("") },
		MalformedRequest:        alwaysFalse,
		IsAuthorized:            alwaysTrue,
		Forbidden:               alwaysFalse,
		ValidContentHeaders:     alwaysTrue,
		KnownContentType:        alwaysTrue,
		ValidEntityLength:       alwaysTrue,
		Options:                 func(*Request) CallbackOut { return Response(Partial{}) },
		LanguagesProvided:       func(*Request) CallbackOut { return Value("") },
		CharsetsProvided:        defaultCharsetsProvided,
		EncodingsProvided:       func(*Request) CallbackOut { return Value("") },
		Variances:               emptyValue,
		ResourceExists:          alwaysTrue,
		GenerateETag:            emptyValue,
		LastModified:            emptyValue,
		Expires:                 emptyValue,
		MovedPermanently:        alwaysFalse,
		MovedTemporarily:        alwaysFalse,
		PreviouslyExisted:       alwaysFalse,
		AllowMissingPost:        alwaysFalse,
		DeleteResource:          alwaysFalse,
		DeleteCompleted:         alwaysTrue,
		PostIsCreate:            alwaysFalse,
		CreatePath:              alwaysFalse,
		BaseURI:                 emptyValue,
		ProcessPost:             func(*Request) CallbackOut { return Bool(false) },
		IsConflict:              alwaysFalse,
		MultipleRepresentations: alwaysFalse,
	}
}

func defaultKnownMethods(*Request) CallbackOut {
	return Value("GET,HEAD,POST,PUT,DELETE,TRACE,CONNECT,OPTIONS")
}

func defaultAllowedMethods(*Request) CallbackOut {
	return Value("GET,HEAD")
}

func defaultCharsetsProvided(*Request) CallbackOut {
	return Value("utf8")
}

// merge fills every zero-valued field of overrides with the corresponding DefaultHandlers entry.
func (h Handlers) merge() *Handlers {
	d := DefaultHandlers()

	if h.ServiceAvailable == nil {
		h.ServiceAvailable = d.ServiceAvailable
	}
	if h.KnownMethods == nil {
		h.KnownMethods = d.KnownMethods
	}
	if h.URITooLong == nil {
		h.URITooLong = d.URITooLong
	}
	if h.AllowedMethods == nil {
		h.AllowedMethods = d.AllowedMethods
	}
	if h.ValidateContentChecksum == nil {
		h.ValidateContentChecksum = d.ValidateContentChecksum
	}
	if h.MalformedRequest == nil {
		h.MalformedRequest = d.MalformedRequest
	}
	if h.IsAuthorized == nil {
		h.IsAuthorized = d.IsAuthorized
	}
	if h.Forbidden == nil {
		h.Forbidden = d.Forbidden
	}
	if h.ValidContentHeaders == nil {
		h.ValidContentHeaders = d.ValidContentHeaders
	}
	if h.KnownContentType == nil {
		h.KnownContentType = d.KnownContentType
	}
	if h.ValidEntityLength == nil {
		h.ValidEntityLength = d.ValidEntityLength
	}
	if h.Options == nil {
		h.Options = d.Options
	}
	if h.LanguagesProvided == nil {
		h.LanguagesProvided = d.LanguagesProvided
	}
	if h.CharsetsProvided == nil {
		h.CharsetsProvided = d.CharsetsProvided
	}
	if h.EncodingsProvided == nil {
		h.EncodingsProvided = d.EncodingsProvided
	}
	if h.Variances == nil {
		h.Variances = d.Variances
	}
	if h.ResourceExists == nil {
		h.ResourceExists = d.ResourceExists
	}
	if h.GenerateETag == nil {
		h.GenerateETag = d.GenerateETag
	}
	if h.LastModified == nil {
		h.LastModified = d.LastModified
	}
	if h.Expires == nil {
		h.Expires = d.Expires
	}
	if h.MovedPermanently == nil {
		h.MovedPermanently = d.MovedPermanently
	}
	if h.MovedTemporarily == nil {
		h.MovedTemporarily = d.MovedTemporarily
	}
	if h.PreviouslyExisted == nil {
		h.PreviouslyExisted = d.PreviouslyExisted
	}
	if h.AllowMissingPost == nil {
		h.AllowMissingPost = d.AllowMissingPost
	}
	if h.DeleteResource == nil {
		h.DeleteResource = d.DeleteResource
	}
	if h.DeleteCompleted == nil {
		h.DeleteCompleted = d.DeleteCompleted
	}
	if h.PostIsCreate == nil {
		h.PostIsCreate = d.PostIsCreate
	}
	if h.CreatePath == nil {
		h.CreatePath = d.CreatePath
	}
	if h.BaseURI == nil {
		h.BaseURI = d.BaseURI
	}
	if h.ProcessPost == nil {
		h.ProcessPost = d.ProcessPost
	}
	if h.IsConflict == nil {
		h.IsConflict = d.IsConflict
	}
	if h.MultipleRepresentations == nil {
		h.MultipleRepresentations = d.MultipleRepresentations
	}

	return &h
}
