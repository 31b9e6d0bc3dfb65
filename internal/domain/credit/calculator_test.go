//go:build unit

package credit_test

import (
	"testing"
	"time"

	"shiftcore/internal/domain/credit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 14, hour, min, 0, 0, time.UTC)
}

func rate(start, end time.Time, r string) credit.RateInterval {
	return credit.RateInterval{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		StartsAt:   start,
		EndsAt:     end,
		Rate:       decimal.RequireFromString(r),
		Year:       2025,
	}
}

func TestOverlapMinutes(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           int64
	}{
		{"full containment", at(8, 0), at(20, 0), at(9, 0), at(11, 0), 120},
		{"partial overlap", at(7, 0), at(9, 0), at(8, 0), at(20, 0), 60},
		{"disjoint", at(6, 0), at(7, 0), at(8, 0), at(9, 0), 0},
		{"touching endpoints", at(6, 0), at(8, 0), at(8, 0), at(9, 0), 0},
		{"identical ranges", at(8, 0), at(9, 0), at(8, 0), at(9, 0), 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, credit.OverlapMinutes(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
		})
	}

	t.Run("sub-minute overlap rounds half away from zero", func(t *testing.T) {
		start := at(8, 0)
		assert.Equal(t, int64(1), credit.OverlapMinutes(start, start.Add(30*time.Second), start, at(9, 0)))
		assert.Equal(t, int64(0), credit.OverlapMinutes(start, start.Add(29*time.Second), start, at(9, 0)))
		assert.Equal(t, int64(2), credit.OverlapMinutes(start, start.Add(90*time.Second), start, at(9, 0)))
	})
}

func TestCompute(t *testing.T) {
	t.Run("single interval, partial overlap", func(t *testing.T) {
		// Worked 07:00-09:00 against a 2.0-rate window 08:00-20:00: only the
		// overlapping hour earns.
		intervals := []credit.RateInterval{rate(at(8, 0), at(20, 0), "2.0")}
		got := credit.Compute(intervals, at(7, 0), at(9, 0))
		assert.True(t, got.Equal(decimal.RequireFromString("2")), "got %s", got)
	})

	t.Run("overlapping intervals are additive", func(t *testing.T) {
		// A base rate plus a bonus window covering the same hour both pay.
		intervals := []credit.RateInterval{
			rate(at(8, 0), at(20, 0), "1.0"),
			rate(at(8, 0), at(10, 0), "0.5"),
		}
		got := credit.Compute(intervals, at(8, 0), at(9, 0))
		assert.True(t, got.Equal(decimal.RequireFromString("1.5")), "got %s", got)
	})

	t.Run("no applicable interval yields zero", func(t *testing.T) {
		intervals := []credit.RateInterval{rate(at(8, 0), at(9, 0), "1.0")}
		got := credit.Compute(intervals, at(10, 0), at(11, 0))
		assert.True(t, got.IsZero())
	})

	t.Run("empty schedule yields zero", func(t *testing.T) {
		got := credit.Compute(nil, at(8, 0), at(9, 0))
		assert.True(t, got.IsZero())
	})

	t.Run("rounding happens per interval not on the sum", func(t *testing.T) {
		// Two intervals each overlapped for 30.4 minutes (30m24s). Per-interval
		// rounding gives 30+30 minutes; rounding the 60.8-minute sum would give
		// 61.
		s := at(8, 0)
		intervals := []credit.RateInterval{
			rate(s, s.Add(30*time.Minute+24*time.Second), "1.0"),
			rate(s.Add(time.Hour), s.Add(time.Hour+30*time.Minute+24*time.Second), "1.0"),
		}
		got := credit.Compute(intervals, s, s.Add(3*time.Hour))
		want := decimal.NewFromInt(60).Div(decimal.NewFromInt(60))
		assert.True(t, got.Equal(want), "got %s", got)
	})

	t.Run("fractional hours keep decimal precision", func(t *testing.T) {
		// 90 minutes at rate 1.0 is exactly 1.5.
		intervals := []credit.RateInterval{rate(at(8, 0), at(9, 30), "1.0")}
		got := credit.Compute(intervals, at(8, 0), at(9, 30))
		assert.True(t, got.Equal(decimal.RequireFromString("1.5")), "got %s", got)
	})
}
