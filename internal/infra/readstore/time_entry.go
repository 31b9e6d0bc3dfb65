package readstore

import (
	"context"
	"time"

	"shiftcore/internal/domain/worklog"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"

	"github.com/google/uuid"
)

type TimeEntryReadStore struct {
	db db.DBTX
}

func NewTimeEntryReadStore(dbtx db.DBTX) *TimeEntryReadStore {
	return &TimeEntryReadStore{db: dbtx}
}

// ListByPersonYear resolves still-open entries to end-or-now using the
// caller's clock, so the summary sees only closed intervals.
func (r *TimeEntryReadStore) ListByPersonYear(ctx context.Context, personID uuid.UUID, year int, now time.Time) ([]worklog.Interval, error) {
	const q = `
		SELECT category_id, starts_at, COALESCE(ends_at, $3), counts_toward_total
		FROM time_entries
		WHERE person_id = $1 AND year = $2
		ORDER BY starts_at`

	rows, err := r.db.Query(ctx, q, personID, year, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time entries", err)
	}
	defer rows.Close()

	var result []worklog.Interval
	for rows.Next() {
		var iv worklog.Interval
		if err := rows.Scan(&iv.CategoryID, &iv.StartsAt, &iv.EndsAt, &iv.CountsTowardTotal); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time entry", err)
		}
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time entries", err)
	}
	return result, nil
}
