package worklog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary accumulates one person-year of worked time bucketed against the
// event calendar. Durations are conserved exactly: the pre/event/post
// segments partition every interval, and non-counting time lands in Other,
// so TotalDuration always equals the sum of the raw interval durations.
type Summary struct {
	PreEventDuration  time.Duration
	PreEventCredits   decimal.Decimal
	EventDuration     time.Duration
	EventCredits      decimal.Decimal
	PostEventDuration time.Duration
	PostEventCredits  decimal.Decimal
	OtherDuration     time.Duration

	// NoEventDates marks the degraded single-bucket mode used when the year
	// has no event window; callers render it instead of pretending pre/post
	// are legitimately empty.
	NoEventDates bool

	window *EventWindow
}

func NewSummary(window *EventWindow) *Summary {
	s := &Summary{
		PreEventCredits:  decimal.Zero,
		EventCredits:     decimal.Zero,
		PostEventCredits: decimal.Zero,
	}
	if window == nil {
		s.NoEventDates = true
	} else {
		w := *window
		s.window = &w
	}
	return s
}

// Add buckets one interval. Credits were computed for the whole interval;
// when it straddles a boundary each bucket receives the share proportional
// to its duration, not a per-sub-range recomputation.
func (s *Summary) Add(iv Interval, credits decimal.Decimal) {
	duration := iv.Duration()
	if duration <= 0 {
		return
	}

	if !iv.CountsTowardTotal {
		s.OtherDuration += duration
		return
	}

	if s.window == nil {
		s.EventDuration += duration
		s.EventCredits = s.EventCredits.Add(credits)
		return
	}

	pre := segment(iv.StartsAt, iv.EndsAt, time.Time{}, s.window.PreBoundary(), true)
	event := segment(iv.StartsAt, iv.EndsAt, s.window.PreBoundary(), s.window.EventEnd, false)
	post := segment(iv.StartsAt, iv.EndsAt, s.window.EventEnd, time.Time{}, false)

	s.PreEventDuration += pre
	s.EventDuration += event
	s.PostEventDuration += post

	s.PreEventCredits = s.PreEventCredits.Add(share(credits, pre, duration))
	s.EventCredits = s.EventCredits.Add(share(credits, event, duration))
	s.PostEventCredits = s.PostEventCredits.Add(share(credits, post, duration))
}

func (s *Summary) TotalDuration() time.Duration {
	return s.PreEventDuration + s.EventDuration + s.PostEventDuration + s.OtherDuration
}

// TotalCredits excludes the Other bucket; non-counting time never earns.
func (s *Summary) TotalCredits() decimal.Decimal {
	return s.PreEventCredits.Add(s.EventCredits).Add(s.PostEventCredits)
}

// segment clips [start, end) to a window half-open on [from, to). openStart
// treats the window as unbounded below; a zero `to` leaves it unbounded
// above.
func segment(start, end, from, to time.Time, openStart bool) time.Duration {
	lo := start
	if !openStart && from.After(lo) {
		lo = from
	}
	hi := end
	if !to.IsZero() && to.Before(hi) {
		hi = to
	}
	if !lo.Before(hi) {
		return 0
	}
	return hi.Sub(lo)
}

func share(credits decimal.Decimal, part, whole time.Duration) decimal.Decimal {
	if part <= 0 || whole <= 0 {
		return decimal.Zero
	}
	if part == whole {
		return credits
	}
	return credits.
		Mul(decimal.NewFromInt(int64(part))).
		Div(decimal.NewFromInt(int64(whole)))
}
