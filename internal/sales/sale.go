// Package sales implements the sold-inventory MIS domain: booking summaries,
// group-by breakdowns, receivables and bookings reports, and unit lookup over
// the sales warehouse table.
package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/forestscape/soldmis/pkg/pagination"
)

// Sale represents one sold-inventory record in the warehouse.
type Sale struct {
	ID                  uuid.UUID `json:"id"`
	UnitNo              string    `json:"unit_no"`
	CustomerName        string    `json:"customer_name"`
	Cluster             string    `json:"cluster"`
	Source              string    `json:"source"`
	UnitType            string    `json:"unit_type"`
	SaleAgreementStatus string    `json:"sale_agreement_status"`
	LoanStatus          string    `json:"loan_status"`
	Sold                bool      `json:"sold"`
	BookingDate         time.Time `json:"booking_date"`
	SaleValue           float64   `json:"sale_value"`
	GrossSaleValue      float64   `json:"gross_sale_value"`
	ApprovedPrice       float64   `json:"approved_price"`
	PerSftPrice         *float64  `json:"per_sft_price"`
	GrossAmountReceived float64   `json:"gross_amount_received"`
	PendingDemand       float64   `json:"pending_demand"`
	Receivables         float64   `json:"receivables"`
	CreatedAt           time.Time `json:"created_at"`
}

// SummaryTotals aggregates booking figures over a reporting period.
type SummaryTotals struct {
	Bookings            int     `json:"bookings"`
	GrossSaleValue      float64 `json:"gross_sale_value"`
	SaleValue           float64 `json:"sale_value"`
	GrossAmountReceived float64 `json:"gross_amount_received"`
	PendingDemand       float64 `json:"pending_demand"`
	Receivables         float64 `json:"receivables"`
	AvgPerSftPrice      float64 `json:"avg_per_sft_price"`
}

// Summary is the period summary report, echoing the period and filters it
// was computed for.
type Summary struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	Filters Filters       `json:"filters"`
	Totals  SummaryTotals `json:"totals"`
}

// BreakdownRow aggregates booking figures for one group key.
type BreakdownRow struct {
	Key                 string  `json:"key"`
	Bookings            int     `json:"bookings"`
	SaleValue           float64 `json:"sale_value"`
	GrossAmountReceived float64 `json:"gross_amount_received"`
	PendingDemand       float64 `json:"pending_demand"`
	Receivables         float64 `json:"receivables"`
}

// Breakdown is the grouped summary report, ordered by bookings descending.
type Breakdown struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	GroupBy string         `json:"group_by"`
	Filters Filters        `json:"filters"`
	Rows    []BreakdownRow `json:"rows"`
}

// ReceivablesReport lists sales with outstanding receivables at or above a
// minimum, ordered by receivables descending. TotalListed sums the
// receivables of the returned page only.
type ReceivablesReport struct {
	From        string                      `json:"from"`
	To          string                      `json:"to"`
	Filters     Filters                     `json:"filters"`
	TotalListed float64                     `json:"total_receivables_in_list"`
	Page        pagination.PageResult[Sale] `json:"page"`
}

// Booking is a sale annotated with payments received in the reporting period
// and the discount derived from gross versus approved price.
type Booking struct {
	Sale
	PaymentsReceivedInPeriod float64 `json:"payments_received_in_period"`
	Discount                 float64 `json:"discount"`
}

// BookingsReport lists bookings in the period, ordered by approved price
// descending.
type BookingsReport struct {
	From     string                         `json:"from"`
	To       string                         `json:"to"`
	SoldOnly bool                           `json:"sold_only"`
	Filters  Filters                        `json:"filters"`
	Page     pagination.PageResult[Booking] `json:"page"`
}
