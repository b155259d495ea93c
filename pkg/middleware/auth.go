package middleware

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

// AuthConfig holds bearer-token authentication settings. An empty token
// disables the guard entirely.
type AuthConfig struct {
	Token string `toml:"token"`
}

// AuthEnv maps auth config fields to environment variable names for override injection.
type AuthEnv struct {
	Token string
}

// Finalize applies environment variable overrides.
func (c *AuthConfig) Finalize(env *AuthEnv) error {
	if env != nil && env.Token != "" {
		if v := os.Getenv(env.Token); v != "" {
			c.Token = v
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
}

// BearerAuth returns middleware that rejects requests lacking a matching
// "Authorization: Bearer <token>" header with 401. When no token is
// configured the middleware passes every request through.
func BearerAuth(cfg *AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Token == "" {
				next.ServeHTTP(w, r)
				return
			}

			auth := strings.TrimSpace(r.Header.Get("Authorization"))
			if auth != "Bearer "+cfg.Token {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
