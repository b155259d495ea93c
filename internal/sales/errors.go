package sales

import (
	"errors"
	"net/http"
)

// Domain errors for sales report operations.
var (
	ErrNotFound       = errors.New("unit not found")
	ErrDuplicate      = errors.New("unit already exists")
	ErrMissingUnitNo  = errors.New("missing query param: unit_no")
	ErrInvalidGroupBy = errors.New("invalid group_by: use one of cluster, unit_type, source, sale_agreement_status, loan_status")
)

// MapHTTPStatus maps sales domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrMissingUnitNo) || errors.Is(err, ErrInvalidGroupBy) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
