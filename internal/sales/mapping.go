package sales

import (
	"github.com/forestscape/soldmis/pkg/query"
	"github.com/forestscape/soldmis/pkg/repository"
)

var projection = query.NewProjectionMap("public", "sales", "s").
	Project("id", "ID").
	Project("unit_no", "UnitNo").
	Project("customer_name", "CustomerName").
	Project("cluster", "Cluster").
	Project("source", "Source").
	Project("unit_type", "UnitType").
	Project("sale_agreement_status", "SaleAgreementStatus").
	Project("loan_status", "LoanStatus").
	Project("sold", "Sold").
	Project("booking_date", "BookingDate").
	Project("sale_value", "SaleValue").
	Project("gross_sale_value", "GrossSaleValue").
	Project("approved_price", "ApprovedPrice").
	Project("per_sft_price", "PerSftPrice").
	Project("gross_amount_received", "GrossAmountReceived").
	Project("pending_demand", "PendingDemand").
	Project("receivables", "Receivables").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "BookingDate", Descending: true}

// groupFields maps the group_by query parameter to projection field names.
var groupFields = map[string]string{
	"cluster":               "Cluster",
	"unit_type":             "UnitType",
	"source":                "Source",
	"sale_agreement_status": "SaleAgreementStatus",
	"loan_status":           "LoanStatus",
}

func scanSale(s repository.Scanner) (Sale, error) {
	var sale Sale
	err := s.Scan(
		&sale.ID,
		&sale.UnitNo,
		&sale.CustomerName,
		&sale.Cluster,
		&sale.Source,
		&sale.UnitType,
		&sale.SaleAgreementStatus,
		&sale.LoanStatus,
		&sale.Sold,
		&sale.BookingDate,
		&sale.SaleValue,
		&sale.GrossSaleValue,
		&sale.ApprovedPrice,
		&sale.PerSftPrice,
		&sale.GrossAmountReceived,
		&sale.PendingDemand,
		&sale.Receivables,
		&sale.CreatedAt,
	)
	return sale, err
}

func scanBreakdownRow(s repository.Scanner) (BreakdownRow, error) {
	var row BreakdownRow
	err := s.Scan(
		&row.Key,
		&row.Bookings,
		&row.SaleValue,
		&row.GrossAmountReceived,
		&row.PendingDemand,
		&row.Receivables,
	)
	return row, err
}
