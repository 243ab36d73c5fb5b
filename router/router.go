// Package router is a thin route matcher for bishop resources: a path and method pick a
// *bishop.Resource, nothing more. Per spec.md §1, the decision engine treats routing as an
// external collaborator rather than a subsystem of its own, so this stays far simpler than the
// teacher's router/inbuilt (no radix trees, no middleware chains, no route groups — that
// machinery solves dispatch at HTTP-server scale, a different problem than "look up one
// resource for one path").
package router

import (
	"github.com/indigo-web/bishop"
	"github.com/indigo-web/bishop/http/method"
)

type handlersMap map[method.Method]*bishop.Resource

// Router maps a URI path to the resource serving each method on it, grounded on the teacher's
// own routesMap/handlersMap shape (router/default.go).
type Router struct {
	routes map[string]handlersMap
}

// New returns an empty Router.
func New() *Router {
	return &Router{routes: make(map[string]handlersMap)}
}

// Route registers res to serve m requests against path.
func (r *Router) Route(path string, m method.Method, res *bishop.Resource) *Router {
	methods, found := r.routes[path]
	if !found {
		methods = handlersMap{}
		r.routes[path] = methods
	}

	methods[m] = res
	return r
}

// Match looks up the resource serving m on path. It reports (nil, false) both when the path is
// unmatched at all and when the path is known but m isn't among its registered methods; a caller
// that needs to tell a 404 apart from a 405/501 can consult Methods(path).
func (r *Router) Match(path string, m method.Method) (*bishop.Resource, bool) {
	methods, found := r.routes[path]
	if !found {
		return nil, false
	}

	res, found := methods[m]
	return res, found
}

// Methods returns every method registered against path, for building an allowed-methods
// callback from the router's own routing table.
func (r *Router) Methods(path string) []method.Method {
	methods, found := r.routes[path]
	if !found {
		return nil
	}

	out := make([]method.Method, 0, len(methods))
	for m := range methods {
		out = append(out, m)
	}

	return out
}
