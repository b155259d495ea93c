package module

import (
	"net/http"
	"slices"
	"strings"

	"github.com/forestscape/soldmis/pkg/routes"
)

// Router dispatches requests to mounted modules by path prefix, falling back
// to a native ServeMux for unmatched paths. It records every registration so
// the full set of routes can be enumerated after startup.
type Router struct {
	modules map[string]*Module
	mounted []*Module
	native  *http.ServeMux
	records []routes.Route
}

// NewRouter creates a Router with an empty module map and native fallback mux.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native fallback mux. The pattern
// uses ServeMux method syntax, e.g. "GET /health".
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)

	method, path, found := strings.Cut(pattern, " ")
	if !found {
		method, path = "", pattern
	}
	r.records = append(r.records, routes.Route{
		Method:  method,
		Pattern: path,
		Handler: handler,
	})
}

// Mount registers a module to handle requests matching its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
	r.mounted = append(r.mounted, m)
}

// Routes returns every registered route: native routes in registration
// order, then each mounted module's routes in mount order.
func (r *Router) Routes() []routes.Route {
	all := make([]routes.Route, 0, len(r.records))
	all = append(all, r.records...)
	for _, m := range r.mounted {
		all = append(all, m.Routes()...)
	}
	return all
}

// Patterns returns the canonical rendering of every registered route, sorted
// lexicographically. The sort is stable: routes that render identically keep
// their registration order, and duplicates are not collapsed.
func (r *Router) Patterns() []string {
	all := r.Routes()
	patterns := make([]string, 0, len(all))
	for _, route := range all {
		patterns = append(patterns, route.Canonical(""))
	}
	slices.SortStableFunc(patterns, strings.Compare)
	return patterns
}

// ServeHTTP dispatches to the matching module or falls back to the native mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)
	prefix := extractPrefix(path)

	if m, ok := r.modules[prefix]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func extractPrefix(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
