package payments

import (
	"github.com/forestscape/soldmis/pkg/query"
	"github.com/forestscape/soldmis/pkg/repository"
)

var projection = query.NewProjectionMap("public", "payments", "p").
	Project("id", "ID").
	Project("unit_no", "UnitNo").
	Project("paid_on", "PaidOn").
	Project("payment_index", "PaymentIndex").
	Project("amount", "Amount").
	Project("created_at", "CreatedAt")

func scanTotalsFigures(s repository.Scanner) (TotalsFigures, error) {
	var t TotalsFigures
	err := s.Scan(&t.PaymentsTotal, &t.UnitsWithPayments)
	return t, err
}

func scanIndexTotal(s repository.Scanner) (IndexTotal, error) {
	var t IndexTotal
	err := s.Scan(&t.PaymentIndex, &t.Total)
	return t, err
}

type unitTotal struct {
	unitNo string
	total  float64
}

func scanUnitTotal(s repository.Scanner) (unitTotal, error) {
	var t unitTotal
	err := s.Scan(&t.unitNo, &t.total)
	return t, err
}
