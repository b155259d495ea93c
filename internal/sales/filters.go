package sales

import (
	"net/url"

	"github.com/forestscape/soldmis/pkg/query"
)

// Filters narrows report queries by sold-inventory attributes. All matches
// are case-insensitive; nil fields are ignored.
type Filters struct {
	Cluster             *string `json:"cluster,omitempty"`
	Source              *string `json:"source,omitempty"`
	UnitType            *string `json:"unit_type,omitempty"`
	SaleAgreementStatus *string `json:"sale_agreement_status,omitempty"`
	LoanStatus          *string `json:"loan_status,omitempty"`
	UnitNo              *string `json:"unit_no,omitempty"`
}

// FiltersFromQuery reads filter parameters from URL query values.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		Cluster:             queryParam(values, "cluster"),
		Source:              queryParam(values, "source"),
		UnitType:            queryParam(values, "unit_type"),
		SaleAgreementStatus: queryParam(values, "sale_agreement_status"),
		LoanStatus:          queryParam(values, "loan_status"),
		UnitNo:              queryParam(values, "unit_no"),
	}
}

// Apply adds the non-nil filters to the query builder.
func (f Filters) Apply(qb *query.Builder) {
	qb.WhereEqualsFold("Cluster", f.Cluster).
		WhereEqualsFold("Source", f.Source).
		WhereEqualsFold("UnitType", f.UnitType).
		WhereEqualsFold("SaleAgreementStatus", f.SaleAgreementStatus).
		WhereEqualsFold("LoanStatus", f.LoanStatus).
		WhereEqualsFold("UnitNo", f.UnitNo)
}

func queryParam(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}
