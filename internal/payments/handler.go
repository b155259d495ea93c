package payments

import (
	"log/slog"
	"net/http"

	"github.com/forestscape/soldmis/pkg/dates"
	"github.com/forestscape/soldmis/pkg/handlers"
	"github.com/forestscape/soldmis/pkg/routes"
)

// Handler exposes the payment ledger operations over HTTP.
type Handler struct {
	payments System
	logger   *slog.Logger
}

// NewHandler creates a Handler for the given payments system.
func NewHandler(payments System, logger *slog.Logger) *Handler {
	return &Handler{
		payments: payments,
		logger:   logger,
	}
}

// Routes returns the payments route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/payments",
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "", Handler: h.Totals},
		},
	}
}

// Totals handles GET /payments.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	rng, err := dates.ParseRange(values)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var unitNo *string
	if v := values.Get("unit_no"); v != "" {
		unitNo = &v
	}

	result, err := h.payments.Totals(r.Context(), rng, unitNo)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
