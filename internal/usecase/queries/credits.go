package queries

import (
	"context"
	"time"

	"shiftcore/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateSchedule is the cached credit-rate store; Clear is the invalidation
// hook called after rate edits.
type RateSchedule interface {
	Get(ctx context.Context, year int, category uuid.UUID) ([]credit.RateInterval, error)
	WarmBulk(ctx context.Context, years map[int][]uuid.UUID) error
	Clear()
}

type CreditQueries interface {
	// ComputeCredits evaluates one worked interval against the rate schedule
	// of the given year. Intervals spanning a year boundary must be
	// segmented by the caller; only the named year's schedule is consulted.
	ComputeCredits(ctx context.Context, category uuid.UUID, start, end time.Time, year int) (decimal.Decimal, error)
	InvalidateRates()
}

type creditQueriesImpl struct {
	schedule RateSchedule
}

func NewCreditQueries(schedule RateSchedule) CreditQueries {
	return &creditQueriesImpl{schedule: schedule}
}

func (q *creditQueriesImpl) ComputeCredits(ctx context.Context, category uuid.UUID, start, end time.Time, year int) (decimal.Decimal, error) {
	intervals, err := q.schedule.Get(ctx, year, category)
	if err != nil {
		return decimal.Zero, err
	}
	return credit.Compute(intervals, start, end), nil
}

func (q *creditQueriesImpl) InvalidateRates() {
	q.schedule.Clear()
}
