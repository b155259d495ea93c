package sales

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/forestscape/soldmis/pkg/dates"
	"github.com/forestscape/soldmis/pkg/pagination"
	"github.com/forestscape/soldmis/pkg/query"
	"github.com/forestscape/soldmis/pkg/repository"
)

// Repository implements System against PostgreSQL.
type Repository struct {
	db       *sql.DB
	payments PeriodPayments
	logger   *slog.Logger
	pages    pagination.Config
	handler  *Handler
}

// NewRepository creates the sales system backed by the given database.
// The payments provider supplies period payment totals for the bookings report.
func NewRepository(db *sql.DB, payments PeriodPayments, logger *slog.Logger, pages pagination.Config) *Repository {
	r := &Repository{
		db:       db,
		payments: payments,
		logger:   logger.With("system", "sales"),
		pages:    pages,
	}
	r.handler = NewHandler(r, r.logger, pages)
	return r
}

func (r *Repository) Handler() *Handler {
	return r.handler
}

// Summary aggregates booking totals over the period.
func (r *Repository) Summary(ctx context.Context, rng dates.Range, filters Filters) (*Summary, error) {
	qb := r.periodQuery(rng, filters)

	selectExpr := fmt.Sprintf(
		"COUNT(*), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(AVG(%s), 0)",
		projection.Column("GrossSaleValue"),
		projection.Column("SaleValue"),
		projection.Column("GrossAmountReceived"),
		projection.Column("PendingDemand"),
		projection.Column("Receivables"),
		projection.Column("PerSftPrice"),
	)

	stmt, args := qb.BuildAggregate(selectExpr)

	totals, err := repository.QueryOne(ctx, r.db, stmt, args, scanSummaryTotals)
	if err != nil {
		return nil, err
	}

	return &Summary{
		From:    rng.FromString(),
		To:      rng.ToString(),
		Filters: filters,
		Totals:  totals,
	}, nil
}

// Breakdown aggregates booking totals grouped by a sold-inventory attribute,
// ordered by bookings descending. Blank group values report as UNKNOWN.
func (r *Repository) Breakdown(ctx context.Context, rng dates.Range, groupBy string, filters Filters) (*Breakdown, error) {
	field, ok := groupFields[groupBy]
	if !ok {
		return nil, ErrInvalidGroupBy
	}

	qb := r.periodQuery(rng, filters)

	selectExpr := fmt.Sprintf(
		"COALESCE(NULLIF(%s, ''), 'UNKNOWN'), COUNT(*) AS bookings, COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0), COALESCE(SUM(%s), 0)",
		projection.Column(field),
		projection.Column("SaleValue"),
		projection.Column("GrossAmountReceived"),
		projection.Column("PendingDemand"),
		projection.Column("Receivables"),
	)

	stmt, args := qb.BuildGrouped(selectExpr, field, "bookings DESC")

	rows, err := repository.QueryMany(ctx, r.db, stmt, args, scanBreakdownRow)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		From:    rng.FromString(),
		To:      rng.ToString(),
		GroupBy: groupBy,
		Filters: filters,
		Rows:    rows,
	}, nil
}

// Receivables pages sales with receivables at or above minReceivable,
// ordered by receivables descending unless the request sorts explicitly.
func (r *Repository) Receivables(
	ctx context.Context,
	rng dates.Range,
	minReceivable float64,
	page pagination.PageRequest,
	filters Filters,
) (*ReceivablesReport, error) {
	page.Normalize(r.pages)

	qb := r.periodQuery(rng, filters).
		WhereGTE("Receivables", minReceivable).
		WhereSearch(page.Search, "UnitNo", "CustomerName")

	sort := page.Sort
	if len(sort) == 0 {
		sort = []query.SortField{{Field: "Receivables", Descending: true}}
	}
	qb.OrderByFields(sort)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryOne(ctx, r.db, countSQL, countArgs, scanCount)
	if err != nil {
		return nil, err
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	sales, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSale)
	if err != nil {
		return nil, err
	}

	var listed float64
	for _, s := range sales {
		listed += s.Receivables
	}

	return &ReceivablesReport{
		From:        rng.FromString(),
		To:          rng.ToString(),
		Filters:     filters,
		TotalListed: listed,
		Page:        pagination.NewPageResult(sales, total, page.Page, page.PageSize),
	}, nil
}

// Bookings pages sales in the period, ordered by approved price descending
// unless the request sorts explicitly, and annotates each row with payments
// received in the period and the gross-versus-approved discount.
func (r *Repository) Bookings(
	ctx context.Context,
	rng dates.Range,
	soldOnly bool,
	page pagination.PageRequest,
	filters Filters,
) (*BookingsReport, error) {
	page.Normalize(r.pages)

	qb := r.periodQuery(rng, filters).
		WhereSearch(page.Search, "UnitNo", "CustomerName")

	if soldOnly {
		qb.WhereEquals("Sold", true)
	}

	sort := page.Sort
	if len(sort) == 0 {
		sort = []query.SortField{{Field: "ApprovedPrice", Descending: true}}
	}
	qb.OrderByFields(sort)

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryOne(ctx, r.db, countSQL, countArgs, scanCount)
	if err != nil {
		return nil, err
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	sales, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSale)
	if err != nil {
		return nil, err
	}

	units := make([]string, 0, len(sales))
	for _, s := range sales {
		units = append(units, s.UnitNo)
	}

	received, err := r.payments.TotalsByUnit(ctx, rng, units)
	if err != nil {
		return nil, err
	}

	bookings := make([]Booking, 0, len(sales))
	for _, s := range sales {
		bookings = append(bookings, Booking{
			Sale:                     s,
			PaymentsReceivedInPeriod: received[strings.ToUpper(s.UnitNo)],
			Discount:                 s.GrossSaleValue - s.ApprovedPrice,
		})
	}

	return &BookingsReport{
		From:     rng.FromString(),
		To:       rng.ToString(),
		SoldOnly: soldOnly,
		Filters:  filters,
		Page:     pagination.NewPageResult(bookings, total, page.Page, page.PageSize),
	}, nil
}

// FindUnit looks up a single sale by unit number, case-insensitively.
func (r *Repository) FindUnit(ctx context.Context, unitNo string) (*Sale, error) {
	if unitNo == "" {
		return nil, ErrMissingUnitNo
	}

	qb := query.NewBuilder(projection).WhereEqualsFold("UnitNo", &unitNo)
	stmt, args := qb.BuildSingleOrNull()

	sale, err := repository.QueryOne(ctx, r.db, stmt, args, scanSale)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &sale, nil
}

func (r *Repository) periodQuery(rng dates.Range, filters Filters) *query.Builder {
	qb := query.NewBuilder(projection, defaultSort).
		WhereBetween("BookingDate", rng.From, rng.To)
	filters.Apply(qb)
	return qb
}

func scanSummaryTotals(s repository.Scanner) (SummaryTotals, error) {
	var t SummaryTotals
	err := s.Scan(
		&t.Bookings,
		&t.GrossSaleValue,
		&t.SaleValue,
		&t.GrossAmountReceived,
		&t.PendingDemand,
		&t.Receivables,
		&t.AvgPerSftPrice,
	)
	return t, err
}

func scanCount(s repository.Scanner) (int, error) {
	var count int
	err := s.Scan(&count)
	return count, err
}
