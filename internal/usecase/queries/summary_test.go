//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shiftcore/internal/domain/credit"
	"shiftcore/internal/domain/worklog"
	"shiftcore/internal/infra"
	"shiftcore/internal/pkg/clock"
	"shiftcore/internal/usecase/queries"
	queriesmock "shiftcore/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ts(d, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func TestWorkSummaryForPersonYear(t *testing.T) {
	ctx := context.Background()
	now := ts(20, 12)

	newMocks := func(t *testing.T) (*queriesmock.MockTimeEntryReadStore, *queriesmock.MockEventWindowReadStore, *queriesmock.MockRateSchedule, queries.SummaryQueries) {
		ctrl := gomock.NewController(t)
		entries := queriesmock.NewMockTimeEntryReadStore(ctrl)
		windows := queriesmock.NewMockEventWindowReadStore(ctrl)
		schedule := queriesmock.NewMockRateSchedule(ctrl)
		q := queries.NewSummaryQueries(entries, windows, schedule, clock.NewMockClock(now))
		return entries, windows, schedule, q
	}

	personID := uuid.New()
	catA := uuid.New()
	catB := uuid.New()

	eventWindow := &worklog.EventWindow{
		Year:       2025,
		EventStart: ts(10, 0),
		EventEnd:   ts(15, 0),
	}

	flatRate := func(category uuid.UUID) []credit.RateInterval {
		return []credit.RateInterval{{
			ID:         uuid.New(),
			CategoryID: category,
			StartsAt:   ts(1, 0),
			EndsAt:     ts(30, 0),
			Rate:       decimal.NewFromInt(1),
			Year:       2025,
		}}
	}

	t.Run("buckets entries and warms the cache once", func(t *testing.T) {
		entries, windows, schedule, q := newMocks(t)

		entries.EXPECT().ListByPersonYear(ctx, personID, 2025, now).Return([]worklog.Interval{
			{CategoryID: catA, StartsAt: ts(8, 9), EndsAt: ts(8, 12), CountsTowardTotal: true},
			{CategoryID: catA, StartsAt: ts(12, 9), EndsAt: ts(12, 13), CountsTowardTotal: true},
			{CategoryID: catB, StartsAt: ts(16, 9), EndsAt: ts(16, 11), CountsTowardTotal: false},
		}, nil)
		windows.EXPECT().FindByYear(ctx, 2025).Return(eventWindow, nil)
		schedule.EXPECT().WarmBulk(ctx, map[int][]uuid.UUID{2025: {catA, catB}}).Return(nil)
		// Only counting entries trigger a rate lookup.
		schedule.EXPECT().Get(ctx, 2025, catA).Return(flatRate(catA), nil).Times(2)

		summary, err := q.WorkSummaryForPersonYear(ctx, personID, 2025)
		require.NoError(t, err)

		expected := &queries.WorkSummary{
			PreEventDuration: 3 * 3600,
			PreEventCredits:  3,
			EventDuration:    4 * 3600,
			EventCredits:     4,
			OtherDuration:    2 * 3600,
			TotalDuration:    9 * 3600,
			TotalCredits:     7,
		}
		if diff := cmp.Diff(expected, summary); diff != "" {
			t.Errorf("WorkSummary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing event window degrades to a single bucket", func(t *testing.T) {
		entries, windows, schedule, q := newMocks(t)

		entries.EXPECT().ListByPersonYear(ctx, personID, 2025, now).Return([]worklog.Interval{
			{CategoryID: catA, StartsAt: ts(8, 9), EndsAt: ts(8, 12), CountsTowardTotal: true},
		}, nil)
		windows.EXPECT().FindByYear(ctx, 2025).
			Return(nil, infra.WrapRepoErr("event window not found", nil, infra.KindNotFound))
		schedule.EXPECT().WarmBulk(ctx, map[int][]uuid.UUID{2025: {catA}}).Return(nil)
		schedule.EXPECT().Get(ctx, 2025, catA).Return(flatRate(catA), nil)

		summary, err := q.WorkSummaryForPersonYear(ctx, personID, 2025)
		require.NoError(t, err)

		assert.True(t, summary.NoEventDates)
		assert.Equal(t, int64(3*3600), summary.EventDuration)
		assert.Equal(t, int64(0), summary.PreEventDuration)
		assert.InDelta(t, 3.0, summary.TotalCredits, 1e-9)
	})

	t.Run("no entries skips the warm pass", func(t *testing.T) {
		entries, windows, _, q := newMocks(t)

		entries.EXPECT().ListByPersonYear(ctx, personID, 2025, now).Return(nil, nil)
		windows.EXPECT().FindByYear(ctx, 2025).Return(eventWindow, nil)

		summary, err := q.WorkSummaryForPersonYear(ctx, personID, 2025)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalDuration)
		assert.Zero(t, summary.TotalCredits)
	})
}
