package payments

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/forestscape/soldmis/pkg/dates"
	"github.com/forestscape/soldmis/pkg/query"
	"github.com/forestscape/soldmis/pkg/repository"
)

// Repository implements System against PostgreSQL.
type Repository struct {
	db      *sql.DB
	logger  *slog.Logger
	handler *Handler
}

// NewRepository creates the payments system backed by the given database.
func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	r := &Repository{
		db:     db,
		logger: logger.With("system", "payments"),
	}
	r.handler = NewHandler(r, r.logger)
	return r
}

func (r *Repository) Handler() *Handler {
	return r.handler
}

// Totals reports period payment aggregates. The overall figures and the
// per-index rollup run as concurrent queries.
func (r *Repository) Totals(ctx context.Context, rng dates.Range, unitNo *string) (*Totals, error) {
	qb := r.periodQuery(rng).WhereEqualsFold("UnitNo", unitNo)

	overallExpr := fmt.Sprintf(
		"COALESCE(SUM(%s), 0), COUNT(DISTINCT UPPER(%s))",
		projection.Column("Amount"),
		projection.Column("UnitNo"),
	)
	overallSQL, overallArgs := qb.BuildAggregate(overallExpr)

	indexCol := projection.Column("PaymentIndex")
	indexExpr := fmt.Sprintf("%s, COALESCE(SUM(%s), 0)", indexCol, projection.Column("Amount"))
	indexSQL, indexArgs := qb.BuildGrouped(indexExpr, "PaymentIndex", indexCol+" ASC")

	var (
		figures TotalsFigures
		byIndex []IndexTotal
	)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		figures, err = repository.QueryOne(ctx, r.db, overallSQL, overallArgs, scanTotalsFigures)
		return err
	})

	group.Go(func() error {
		var err error
		byIndex, err = repository.QueryMany(ctx, r.db, indexSQL, indexArgs, scanIndexTotal)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &Totals{
		From:    rng.FromString(),
		To:      rng.ToString(),
		UnitNo:  unitNo,
		Totals:  figures,
		ByIndex: byIndex,
	}, nil
}

// TotalsByUnit sums period payments per unit for the given unit numbers.
func (r *Repository) TotalsByUnit(ctx context.Context, rng dates.Range, units []string) (map[string]float64, error) {
	totals := make(map[string]float64, len(units))
	if len(units) == 0 {
		return totals, nil
	}

	folded := make([]any, len(units))
	for i, unit := range units {
		folded[i] = strings.ToUpper(unit)
	}

	// Column passes unmapped expressions through, so the folded unit
	// expression works as both condition field and group key.
	foldedUnit := fmt.Sprintf("UPPER(%s)", projection.Column("UnitNo"))

	qb := r.periodQuery(rng).WhereIn(foldedUnit, folded)

	selectExpr := fmt.Sprintf("%s, COALESCE(SUM(%s), 0)", foldedUnit, projection.Column("Amount"))
	stmt, args := qb.BuildGrouped(selectExpr, foldedUnit, "")

	rows, err := repository.QueryMany(ctx, r.db, stmt, args, scanUnitTotal)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.unitNo] = row.total
	}

	return totals, nil
}

func (r *Repository) periodQuery(rng dates.Range) *query.Builder {
	return query.NewBuilder(projection).
		WhereBetween("PaidOn", rng.From, rng.To)
}
