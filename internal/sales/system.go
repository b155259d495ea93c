package sales

import (
	"context"

	"github.com/forestscape/soldmis/pkg/dates"
	"github.com/forestscape/soldmis/pkg/pagination"
)

// PeriodPayments supplies payment totals per unit for a reporting period.
// The payments domain implements it; the bookings report consumes it.
// Result keys are upper-cased unit numbers.
type PeriodPayments interface {
	TotalsByUnit(ctx context.Context, rng dates.Range, units []string) (map[string]float64, error)
}

// System defines the public contract for sales report operations.
type System interface {
	Handler() *Handler

	Summary(ctx context.Context, rng dates.Range, filters Filters) (*Summary, error)
	Breakdown(ctx context.Context, rng dates.Range, groupBy string, filters Filters) (*Breakdown, error)

	Receivables(
		ctx context.Context,
		rng dates.Range,
		minReceivable float64,
		page pagination.PageRequest,
		filters Filters,
	) (*ReceivablesReport, error)

	Bookings(
		ctx context.Context,
		rng dates.Range,
		soldOnly bool,
		page pagination.PageRequest,
		filters Filters,
	) (*BookingsReport, error)

	FindUnit(ctx context.Context, unitNo string) (*Sale, error)
}
