package module_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/forestscape/soldmis/pkg/module"
	"github.com/forestscape/soldmis/pkg/routes"
)

func noop(w http.ResponseWriter, r *http.Request) {}

func reportGroups() []routes.Group {
	return []routes.Group{
		{
			Routes: []routes.Route{
				{Method: http.MethodGet, Pattern: "/summary", Handler: noop},
				{Method: http.MethodGet, Pattern: "/unit", Handler: noop},
			},
		},
		{
			Prefix: "/payments",
			Routes: []routes.Route{
				{Method: http.MethodGet, Pattern: "", Handler: noop},
			},
		},
	}
}

func TestModuleRoutes(t *testing.T) {
	m := module.New("/soldmis", reportGroups()...)

	expected := []string{
		"/soldmis/summary [GET]",
		"/soldmis/unit [GET]",
		"/soldmis/payments [GET]",
	}

	flat := m.Routes()
	if len(flat) != len(expected) {
		t.Fatalf("got %d routes, want %d", len(flat), len(expected))
	}
	for i, route := range flat {
		if got := route.Canonical(""); got != expected[i] {
			t.Errorf("route %d: got %q, want %q", i, got, expected[i])
		}
	}
}

func TestModuleDispatch(t *testing.T) {
	m := module.New("/soldmis", routes.Group{
		Routes: []routes.Route{
			{
				Method:  http.MethodGet,
				Pattern: "/summary",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNoContent)
				},
			},
		},
	})

	router := module.NewRouter()
	router.Mount(m)

	req := httptest.NewRequest(http.MethodGet, "/soldmis/summary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRouterPatternsSorted(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /routes", noop)
	router.HandleNative("GET /health", noop)
	router.Mount(module.New("/soldmis", reportGroups()...))

	patterns := router.Patterns()

	if !slices.IsSorted(patterns) {
		t.Errorf("patterns not sorted: %v", patterns)
	}

	expected := []string{
		"/health [GET]",
		"/routes [GET]",
		"/soldmis/payments [GET]",
		"/soldmis/summary [GET]",
		"/soldmis/unit [GET]",
	}

	if !slices.Equal(patterns, expected) {
		t.Errorf("got %v, want %v", patterns, expected)
	}
}

func TestRouterPatternsIdempotent(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /health", noop)
	router.Mount(module.New("/soldmis", reportGroups()...))

	first := router.Patterns()
	for i := 0; i < 3; i++ {
		if got := router.Patterns(); !slices.Equal(got, first) {
			t.Fatalf("patterns changed between calls: %v vs %v", got, first)
		}
	}
}

func TestRouterPatternsKeepDuplicates(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /soldmis/summary", noop)
	router.Mount(module.New("/soldmis", routes.Group{
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "/summary", Handler: noop},
		},
	}))

	patterns := router.Patterns()
	if len(patterns) != 2 {
		t.Fatalf("got %d patterns, want 2: %v", len(patterns), patterns)
	}
	if patterns[0] != patterns[1] {
		t.Errorf("expected identical renderings, got %v", patterns)
	}
}

func TestRouterPatternsEmpty(t *testing.T) {
	router := module.NewRouter()

	patterns := router.Patterns()
	if patterns == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(patterns) != 0 {
		t.Errorf("got %d patterns, want 0", len(patterns))
	}
}

func TestRouterNativeFallback(t *testing.T) {
	router := module.NewRouter()
	router.HandleNative("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Mount(module.New("/soldmis", reportGroups()...))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("got status %d for unknown path, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestInvalidPrefixPanics(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"no leading slash", "soldmis"},
		{"multi-level", "/soldmis/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			module.New(tt.prefix)
		})
	}
}
