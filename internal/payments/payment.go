// Package payments implements the payment-ledger domain: installment rows
// recorded against sold units, with period totals overall, per installment
// index, and per unit.
package payments

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one recorded installment against a unit. PaymentIndex is the
// installment slot, 1 through 20.
type Payment struct {
	ID           uuid.UUID `json:"id"`
	UnitNo       string    `json:"unit_no"`
	PaidOn       time.Time `json:"paid_on"`
	PaymentIndex int       `json:"payment_index"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// IndexTotal aggregates payments for one installment index over a period.
type IndexTotal struct {
	PaymentIndex int     `json:"payment_index"`
	Total        float64 `json:"total"`
}

// TotalsFigures holds the overall payment aggregates for a period.
type TotalsFigures struct {
	PaymentsTotal     float64 `json:"payments_total"`
	UnitsWithPayments int     `json:"units_with_payments"`
}

// Totals is the period payments report, optionally narrowed to one unit.
type Totals struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	UnitNo  *string       `json:"unit_no,omitempty"`
	Totals  TotalsFigures `json:"totals"`
	ByIndex []IndexTotal  `json:"by_index"`
}
