package sales

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/forestscape/soldmis/pkg/dates"
	"github.com/forestscape/soldmis/pkg/handlers"
	"github.com/forestscape/soldmis/pkg/pagination"
	"github.com/forestscape/soldmis/pkg/routes"
)

// Handler exposes the sales report operations over HTTP.
type Handler struct {
	sales  System
	logger *slog.Logger
	pages  pagination.Config
}

// NewHandler creates a Handler for the given sales system.
func NewHandler(sales System, logger *slog.Logger, pages pagination.Config) *Handler {
	return &Handler{
		sales:  sales,
		logger: logger,
		pages:  pages,
	}
}

// Routes returns the sales route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: http.MethodGet, Pattern: "/summary", Handler: h.Summary},
			{Method: http.MethodGet, Pattern: "/unit", Handler: h.Unit},
			{Method: http.MethodGet, Pattern: "/breakdown", Handler: h.Breakdown},
			{Method: http.MethodGet, Pattern: "/receivables", Handler: h.Receivables},
			{Method: http.MethodGet, Pattern: "/bookings", Handler: h.Bookings},
		},
	}
}

// Summary handles GET /summary.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	rng, err := dates.ParseRange(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sales.Summary(r.Context(), rng, FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Unit handles GET /unit.
func (h *Handler) Unit(w http.ResponseWriter, r *http.Request) {
	unitNo := r.URL.Query().Get("unit_no")

	sale, err := h.sales.FindUnit(r.Context(), unitNo)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sale)
}

// Breakdown handles GET /breakdown. group_by defaults to cluster.
func (h *Handler) Breakdown(w http.ResponseWriter, r *http.Request) {
	rng, err := dates.ParseRange(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	groupBy := r.URL.Query().Get("group_by")
	if groupBy == "" {
		groupBy = "cluster"
	}

	result, err := h.sales.Breakdown(r.Context(), rng, groupBy, FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Receivables handles GET /receivables. min_receivable defaults to 1.
func (h *Handler) Receivables(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	rng, err := dates.ParseRange(values)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	minReceivable, err := parseFloat(values.Get("min_receivable"), 1)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page := pagination.PageRequestFromQuery(values, h.pages)

	result, err := h.sales.Receivables(r.Context(), rng, minReceivable, page, FiltersFromQuery(values))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Bookings handles GET /bookings. sold_only defaults to true.
func (h *Handler) Bookings(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	rng, err := dates.ParseRange(values)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	soldOnly := parseBool(values.Get("sold_only"), true)
	page := pagination.PageRequestFromQuery(values, h.pages)

	result, err := h.sales.Bookings(r.Context(), rng, soldOnly, page, FiltersFromQuery(values))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseFloat(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseBool(s string, fallback bool) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}
