// Package module provides prefix-scoped HTTP modules and the root router
// that dispatches between them. The router doubles as the service's route
// registry: it is populated once during startup and read-only afterwards,
// so the route inventory it exposes is stable for the process lifetime.
package module

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/forestscape/soldmis/pkg/middleware"
	"github.com/forestscape/soldmis/pkg/routes"
)

// Module is an HTTP handler that strips its prefix and delegates to an inner
// mux built from its route groups, with its own middleware stack.
type Module struct {
	prefix     string
	groups     []routes.Group
	mux        *http.ServeMux
	middleware middleware.System
}

// New creates a Module with the given single-level prefix (e.g. "/soldmis")
// and registers the given route groups on its inner mux. Panics if the
// prefix is empty, missing a leading slash, or multi-level.
func New(prefix string, groups ...routes.Group) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	routes.Register(mux, groups...)

	return &Module{
		prefix:     prefix,
		groups:     groups,
		mux:        mux,
		middleware: middleware.New(),
	}
}

// Handler returns the inner mux wrapped with the module's middleware stack.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.mux)
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Routes returns the module's routes flattened to full paths, module prefix
// included, in registration order.
func (m *Module) Routes() []routes.Route {
	return routes.Flatten(m.prefix, m.groups...)
}

// Serve strips the module prefix from the request path and dispatches to the inner mux.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := extractPath(req.URL.Path, m.prefix)
	request := cloneRequest(req, path)
	m.Handler().ServeHTTP(w, request)
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

func cloneRequest(req *http.Request, path string) *http.Request {
	request := new(http.Request)
	*request = *req
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = path
	request.URL.RawPath = ""
	return request
}

func extractPath(fullPath, prefix string) string {
	path := fullPath[len(prefix):]
	if path == "" {
		return "/"
	}
	return path
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix cannot be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
