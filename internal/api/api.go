// Package api assembles the MIS API module: domain systems wired to
// infrastructure, route groups mounted under the configured base path, and
// the module middleware stack (CORS, bearer auth, request logging).
package api

import (
	"github.com/forestscape/soldmis/internal/config"
	"github.com/forestscape/soldmis/internal/infrastructure"
	"github.com/forestscape/soldmis/pkg/middleware"
	"github.com/forestscape/soldmis/pkg/module"
)

// NewModule builds the API module from configuration and infrastructure.
// Every route in the module sits behind the bearer-auth guard; routes
// registered outside it (health, readiness, route inventory) are not.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) *module.Module {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	m := module.New(cfg.API.BasePath, domain.Groups()...)

	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.BearerAuth(&cfg.API.Auth))
	m.Use(middleware.Logger(infra.Logger.With("system", "api")))

	return m
}
