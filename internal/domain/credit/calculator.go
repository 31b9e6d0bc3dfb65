package credit

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// OverlapMinutes returns the overlap of [aStart, aEnd) and [bStart, bEnd) in
// whole minutes, rounded half away from zero. Disjoint or touching ranges
// yield zero.
func OverlapMinutes(aStart, aEnd, bStart, bEnd time.Time) int64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !start.Before(end) {
		return 0
	}
	return int64(math.Round(end.Sub(start).Seconds() / 60))
}

// Compute sums rate x overlap-minutes / 60 across every applicable rate
// interval. Each overlap is rounded to whole minutes before the rate is
// applied; rounding per interval rather than once on the sum reproduces the
// historical credit totals and must not be "cleaned up".
func Compute(intervals []RateInterval, start, end time.Time) decimal.Decimal {
	sixty := decimal.NewFromInt(60)
	total := decimal.Zero
	for _, iv := range intervals {
		minutes := OverlapMinutes(start, end, iv.StartsAt, iv.EndsAt)
		if minutes == 0 {
			continue
		}
		total = total.Add(iv.Rate.Mul(decimal.NewFromInt(minutes)).Div(sixty))
	}
	return total
}
