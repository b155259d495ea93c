package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/forestscape/soldmis/pkg/middleware"
	"github.com/forestscape/soldmis/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "SOLDMIS_CORS_ENABLED",
	Origins:          "SOLDMIS_CORS_ORIGINS",
	AllowedMethods:   "SOLDMIS_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "SOLDMIS_CORS_ALLOWED_HEADERS",
	AllowCredentials: "SOLDMIS_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "SOLDMIS_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "SOLDMIS_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "SOLDMIS_PAGINATION_MAX_PAGE_SIZE",
}

// API_KEY matches the hosting contract of the original deployment; an empty
// value leaves the API module unguarded.
var authEnv = &middleware.AuthEnv{
	Token: "API_KEY",
}

// APIConfig holds API routing, CORS, auth, and pagination settings.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Auth       middleware.AuthConfig `toml:"auth"`
	Pagination pagination.Config     `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, auth, and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.Auth.Merge(&overlay.Auth)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/soldmis"
	}
	if c.Pagination.DefaultPageSize == 0 {
		c.Pagination.DefaultPageSize = 200
	}
	if c.Pagination.MaxPageSize == 0 {
		c.Pagination.MaxPageSize = 1000
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("SOLDMIS_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}

func (c *APIConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	return nil
}
