// Package routes defines the route registry primitives: route and group
// declarations, mux registration, and the canonical rendering used by the
// route inventory endpoint.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Canonical returns the deterministic string form of the route under the
// given path prefix: "<prefix><pattern> [<METHOD>]". An empty prefix and
// pattern render as "/". The form is total-orderable and stable for a
// given route.
func (r Route) Canonical(prefix string) string {
	path := prefix + r.Pattern
	if path == "" {
		path = "/"
	}
	return path + " [" + r.Method + "]"
}
