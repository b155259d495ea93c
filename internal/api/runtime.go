package api

import (
	"database/sql"
	"log/slog"

	"github.com/forestscape/soldmis/internal/config"
	"github.com/forestscape/soldmis/internal/infrastructure"
	"github.com/forestscape/soldmis/pkg/pagination"
)

// Runtime bundles the dependencies domain systems draw from.
type Runtime struct {
	DB     *sql.DB
	Logger *slog.Logger
	Pages  pagination.Config
}

// NewRuntime extracts the domain-facing runtime from configuration and
// infrastructure.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		DB:     infra.Database.Connection(),
		Logger: infra.Logger,
		Pages:  cfg.API.Pagination,
	}
}
