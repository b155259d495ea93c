package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forestscape/soldmis/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth(t *testing.T) {
	cfg := &middleware.AuthConfig{Token: "secret-token"}
	guarded := middleware.BearerAuth(cfg)(okHandler())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer secret-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong token", "Bearer wrong", http.StatusUnauthorized},
		{"wrong scheme", "Basic secret-token", http.StatusUnauthorized},
		{"bare token", "secret-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/summary", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			guarded.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("got status %d, want %d", rec.Code, tt.status)
			}

			if tt.status == http.StatusUnauthorized {
				if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
					t.Errorf("got content type %q, want application/json", ct)
				}
				if !strings.Contains(rec.Body.String(), "unauthorized") {
					t.Errorf("unexpected body: %q", rec.Body.String())
				}
			}
		})
	}
}

func TestBearerAuthDisabledWithoutToken(t *testing.T) {
	cfg := &middleware.AuthConfig{}
	guarded := middleware.BearerAuth(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", "from-env")

	cfg := middleware.AuthConfig{Token: "from-file"}
	if err := cfg.Finalize(&middleware.AuthEnv{Token: "TEST_API_KEY"}); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Token != "from-env" {
		t.Errorf("got %q, want from-env", cfg.Token)
	}
}

func TestAuthConfigMerge(t *testing.T) {
	cfg := middleware.AuthConfig{Token: "base"}

	cfg.Merge(&middleware.AuthConfig{})
	if cfg.Token != "base" {
		t.Errorf("empty overlay should not clear token, got %q", cfg.Token)
	}

	cfg.Merge(&middleware.AuthConfig{Token: "overlay"})
	if cfg.Token != "overlay" {
		t.Errorf("got %q, want overlay", cfg.Token)
	}
}
