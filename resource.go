package bishop

import "github.com/indigo-web/bishop/http/status"

// Representation pairs a media type with the Responder that materializes it. Resources are
// built from an ordered slice of these rather than a map, so the offered order the negotiation
// tie-break rules depend on (§4.2) is preserved.
type Representation struct {
	Type      string
	Responder Responder
}

// Provide builds a Representation.
func Provide(mediaType string, r Responder) Representation {
	return Representation{Type: mediaType, Responder: r}
}

// Resource is a declarative specification of the representations a URI supports plus the
// decision callbacks governing its HTTP semantics (GLOSSARY).
type Resource struct {
	representations []Representation
	contentTypes    []string
	handlers        *Handlers

	isHalt       bool
	haltStatus   status.Code
	haltFragment Partial

	isError  bool
	errValue error
}

// NewResource constructs a Resource from its response table, merging any handler overrides atop
// DefaultHandlers. content-types-provided is derived from the representations' own order.
func NewResource(representations []Representation, overrides ...Handlers) *Resource {
	var h Handlers
	if len(overrides) > 0 {
		h = overrides[0]
	}

	types := make([]string, len(representations))
	for i, r := range representations {
		types[i] = r.Type
	}

	return &Resource{
		representations: representations,
		contentTypes:    types,
		handlers:        h.merge(),
	}
}

// HaltResource returns a resource that bypasses the decision graph: it has no representations,
// and Run responds immediately with code, merged with an optional response fragment, without
// negotiating.
func HaltResource(code status.Code, fragment ...Partial) *Resource {
	var f Partial
	if len(fragment) > 0 {
		f = fragment[0]
	}

	return &Resource{
		isHalt:       true,
		haltStatus:   code,
		haltFragment: f,
		handlers:     DefaultHandlers().merge(),
	}
}

// ErrorResource returns a resource that always terminates with 500 and term's message as body.
func ErrorResource(term error) *Resource {
	return &Resource{
		isError:  true,
		errValue: term,
		handlers: DefaultHandlers().merge(),
	}
}

// responderFor looks up the Responder registered for mediaType.
func (res *Resource) responderFor(mediaType string) (Responder, bool) {
	for _, r := range res.representations {
		if r.Type == mediaType {
			return r.Responder, true
		}
	}

	return Responder{}, false
}
