package main

import (
	"net/http"
	"time"

	"github.com/forestscape/soldmis/internal/api"
	"github.com/forestscape/soldmis/internal/config"
	"github.com/forestscape/soldmis/internal/infrastructure"
	"github.com/forestscape/soldmis/pkg/handlers"
	"github.com/forestscape/soldmis/pkg/module"
)

const serviceName = "Forestscape MIS"

type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) *Modules {
	return &Modules{
		API: api.NewModule(cfg, infra),
	}
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

// buildRouter creates the root router and registers the native routes.
// These sit outside the API module and therefore outside its auth guard.
func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /health", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
			"version": cfg.Version,
			"ts":      time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	router.HandleNative("GET /routes", func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string][]string{
			"routes": router.Patterns(),
		})
	})

	return router
}
