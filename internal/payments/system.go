package payments

import (
	"context"

	"github.com/forestscape/soldmis/pkg/dates"
)

// System defines the public contract for payment ledger operations.
type System interface {
	Handler() *Handler

	// Totals reports period payment aggregates, optionally narrowed to a
	// single unit (case-insensitive).
	Totals(ctx context.Context, rng dates.Range, unitNo *string) (*Totals, error)

	// TotalsByUnit sums period payments per unit for the given unit numbers.
	// Result keys are upper-cased unit numbers; units without payments in
	// the period are absent. An empty unit list yields an empty map.
	TotalsByUnit(ctx context.Context, rng dates.Range, units []string) (map[string]float64, error)
}
