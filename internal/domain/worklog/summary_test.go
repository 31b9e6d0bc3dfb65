//go:build unit

package worklog_test

import (
	"testing"
	"time"

	"shiftcore/internal/domain/worklog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func window() *worklog.EventWindow {
	return &worklog.EventWindow{
		Year:       2025,
		EventStart: day(10, 0),
		EventEnd:   day(15, 0),
	}
}

func entry(start, end time.Time, counts bool) worklog.Interval {
	return worklog.Interval{
		CategoryID:        uuid.New(),
		StartsAt:          start,
		EndsAt:            end,
		CountsTowardTotal: counts,
	}
}

func TestSummaryBuckets(t *testing.T) {
	t.Run("intervals land in the right bucket", func(t *testing.T) {
		s := worklog.NewSummary(window())

		s.Add(entry(day(8, 9), day(8, 12), true), decimal.NewFromInt(3))
		s.Add(entry(day(12, 9), day(12, 13), true), decimal.NewFromInt(4))
		s.Add(entry(day(16, 9), day(16, 11), true), decimal.NewFromInt(2))

		assert.Equal(t, 3*time.Hour, s.PreEventDuration)
		assert.Equal(t, 4*time.Hour, s.EventDuration)
		assert.Equal(t, 2*time.Hour, s.PostEventDuration)
		assert.True(t, s.PreEventCredits.Equal(decimal.NewFromInt(3)))
		assert.True(t, s.EventCredits.Equal(decimal.NewFromInt(4)))
		assert.True(t, s.PostEventCredits.Equal(decimal.NewFromInt(2)))
		assert.False(t, s.NoEventDates)
	})

	t.Run("straddling interval splits proportionally", func(t *testing.T) {
		s := worklog.NewSummary(window())

		// 4 hours: 1 before the event starts, 3 inside it.
		s.Add(entry(day(9, 23), day(10, 3), true), decimal.NewFromInt(4))

		assert.Equal(t, time.Hour, s.PreEventDuration)
		assert.Equal(t, 3*time.Hour, s.EventDuration)
		assert.True(t, s.PreEventCredits.Equal(decimal.NewFromInt(1)), "got %s", s.PreEventCredits)
		assert.True(t, s.EventCredits.Equal(decimal.NewFromInt(3)), "got %s", s.EventCredits)
	})

	t.Run("pre event split replaces event start as the boundary", func(t *testing.T) {
		w := window()
		split := day(12, 0)
		w.PreEventSplit = &split
		s := worklog.NewSummary(w)

		// Entirely after EventStart but before the split: still pre-event.
		s.Add(entry(day(11, 9), day(11, 12), true), decimal.NewFromInt(3))

		assert.Equal(t, 3*time.Hour, s.PreEventDuration)
		assert.Equal(t, time.Duration(0), s.EventDuration)
	})

	t.Run("non-counting interval goes to other with no credits", func(t *testing.T) {
		s := worklog.NewSummary(window())

		s.Add(entry(day(12, 9), day(12, 12), false), decimal.Zero)

		assert.Equal(t, 3*time.Hour, s.OtherDuration)
		assert.Equal(t, time.Duration(0), s.EventDuration)
		assert.True(t, s.TotalCredits().IsZero())
	})

	t.Run("zero and negative durations are skipped", func(t *testing.T) {
		s := worklog.NewSummary(window())

		s.Add(entry(day(12, 9), day(12, 9), true), decimal.NewFromInt(1))
		s.Add(entry(day(12, 9), day(12, 8), true), decimal.NewFromInt(1))

		assert.Equal(t, time.Duration(0), s.TotalDuration())
		assert.True(t, s.TotalCredits().IsZero())
	})
}

func TestSummaryNoEventDates(t *testing.T) {
	s := worklog.NewSummary(nil)
	require.True(t, s.NoEventDates)

	s.Add(entry(day(8, 9), day(8, 12), true), decimal.NewFromInt(3))
	s.Add(entry(day(16, 9), day(16, 11), false), decimal.Zero)

	// Everything counting collapses into the event bucket.
	assert.Equal(t, 3*time.Hour, s.EventDuration)
	assert.Equal(t, time.Duration(0), s.PreEventDuration)
	assert.Equal(t, time.Duration(0), s.PostEventDuration)
	assert.Equal(t, 2*time.Hour, s.OtherDuration)
	assert.True(t, s.TotalCredits().Equal(decimal.NewFromInt(3)))
}

func TestSummaryConservation(t *testing.T) {
	s := worklog.NewSummary(window())

	raw := []worklog.Interval{
		entry(day(9, 22), day(10, 2), true),                     // straddles pre/event
		entry(day(14, 22), day(15, 2), true),                    // straddles event/post
		entry(day(12, 9), day(12, 17), true),                    // inside event
		entry(day(8, 9).Add(17*time.Second), day(8, 10), true),  // odd seconds
		entry(day(16, 9), day(16, 12), false),                   // other
	}

	var want time.Duration
	for _, iv := range raw {
		want += iv.Duration()
		s.Add(iv, decimal.NewFromInt(1))
	}

	// Bucketed time must equal raw time to the second, whatever the splits.
	assert.Equal(t, want, s.TotalDuration())
}

func TestEventWindowPreBoundary(t *testing.T) {
	w := window()
	assert.Equal(t, w.EventStart, w.PreBoundary())

	split := day(11, 0)
	w.PreEventSplit = &split
	assert.Equal(t, split, w.PreBoundary())
}
