package readstore

import (
	"context"

	"shiftcore/internal/domain/credit"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RateIntervalReadStore struct {
	db db.DBTX
}

func NewRateIntervalReadStore(dbtx db.DBTX) *RateIntervalReadStore {
	return &RateIntervalReadStore{db: dbtx}
}

// ListByYear fetches every category's intervals for one year in a single
// query; the schedule cache uses it when the caller doesn't know the
// category set up front.
func (r *RateIntervalReadStore) ListByYear(ctx context.Context, year int) ([]credit.RateInterval, error) {
	const q = `
		SELECT id, category_id, starts_at, ends_at, rate, year, description
		FROM credit_rate_intervals
		WHERE year = $1
		ORDER BY starts_at`

	rows, err := r.db.Query(ctx, q, year)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate intervals by year", err)
	}
	defer rows.Close()

	return scanRateIntervals(rows)
}

func (r *RateIntervalReadStore) ListByYearAndCategories(ctx context.Context, year int, categories []uuid.UUID) ([]credit.RateInterval, error) {
	const q = `
		SELECT id, category_id, starts_at, ends_at, rate, year, description
		FROM credit_rate_intervals
		WHERE year = $1 AND category_id = ANY($2)
		ORDER BY starts_at`

	rows, err := r.db.Query(ctx, q, year, categories)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate intervals by categories", err)
	}
	defer rows.Close()

	return scanRateIntervals(rows)
}

func scanRateIntervals(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]credit.RateInterval, error) {
	var result []credit.RateInterval
	for rows.Next() {
		var iv credit.RateInterval
		var rate pgtype.Numeric
		if err := rows.Scan(&iv.ID, &iv.CategoryID, &iv.StartsAt, &iv.EndsAt, &rate, &iv.Year, &iv.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate interval", err)
		}
		d, err := pgconv.DecimalFromNumeric(rate)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid rate value", err)
		}
		iv.Rate = d
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rate intervals", err)
	}
	return result, nil
}
