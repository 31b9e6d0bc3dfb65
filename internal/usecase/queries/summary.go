package queries

import (
	"context"
	"time"

	"shiftcore/internal/domain/credit"
	"shiftcore/internal/domain/worklog"
	"shiftcore/internal/infra"
	"shiftcore/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TimeEntryReadStore interface {
	ListByPersonYear(ctx context.Context, personID uuid.UUID, year int, now time.Time) ([]worklog.Interval, error)
}

type EventWindowReadStore interface {
	FindByYear(ctx context.Context, year int) (*worklog.EventWindow, error)
}

type SummaryQueries interface {
	WorkSummaryForPersonYear(ctx context.Context, personID uuid.UUID, year int) (*WorkSummary, error)
}

type summaryQueriesImpl struct {
	entries  TimeEntryReadStore
	windows  EventWindowReadStore
	schedule RateSchedule
	clock    clock.Clock
}

func NewSummaryQueries(
	entries TimeEntryReadStore,
	windows EventWindowReadStore,
	schedule RateSchedule,
	clock clock.Clock,
) SummaryQueries {
	return &summaryQueriesImpl{
		entries:  entries,
		windows:  windows,
		schedule: schedule,
		clock:    clock,
	}
}

func (q *summaryQueriesImpl) WorkSummaryForPersonYear(ctx context.Context, personID uuid.UUID, year int) (*WorkSummary, error) {
	entries, err := q.entries.ListByPersonYear(ctx, personID, year, q.clock.Now())
	if err != nil {
		return nil, err
	}

	window, err := q.windows.FindByYear(ctx, year)
	if err != nil {
		// A year without event dates is a degraded state, not a failure.
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		window = nil
	}

	// One warm pass over the distinct categories keeps the per-entry credit
	// lookups out of the database.
	categories := make([]uuid.UUID, 0, 4)
	seen := make(map[uuid.UUID]struct{})
	for _, e := range entries {
		if _, ok := seen[e.CategoryID]; ok {
			continue
		}
		seen[e.CategoryID] = struct{}{}
		categories = append(categories, e.CategoryID)
	}
	if len(categories) > 0 {
		if err := q.schedule.WarmBulk(ctx, map[int][]uuid.UUID{year: categories}); err != nil {
			return nil, err
		}
	}

	summary := worklog.NewSummary(window)
	for _, e := range entries {
		var credits decimal.Decimal
		if e.CountsTowardTotal {
			intervals, err := q.schedule.Get(ctx, year, e.CategoryID)
			if err != nil {
				return nil, err
			}
			credits = credit.Compute(intervals, e.StartsAt, e.EndsAt)
		}
		summary.Add(e, credits)
	}

	return toWorkSummary(summary), nil
}

func toWorkSummary(s *worklog.Summary) *WorkSummary {
	return &WorkSummary{
		PreEventDuration:  int64(s.PreEventDuration.Seconds()),
		PreEventCredits:   s.PreEventCredits.InexactFloat64(),
		EventDuration:     int64(s.EventDuration.Seconds()),
		EventCredits:      s.EventCredits.InexactFloat64(),
		PostEventDuration: int64(s.PostEventDuration.Seconds()),
		PostEventCredits:  s.PostEventCredits.InexactFloat64(),
		OtherDuration:     int64(s.OtherDuration.Seconds()),
		TotalDuration:     int64(s.TotalDuration().Seconds()),
		TotalCredits:      s.TotalCredits().InexactFloat64(),
		NoEventDates:      s.NoEventDates,
	}
}
