package worklog

import (
	"time"

	"github.com/google/uuid"
)

// Interval is one on-duty stretch for a person. Open entries are resolved to
// end-or-now by the read layer before they get here. CountsTowardTotal is
// false for categories excluded from recognition totals; their clock time is
// still accounted for under the "other" bucket.
type Interval struct {
	CategoryID        uuid.UUID
	StartsAt          time.Time
	EndsAt            time.Time
	CountsTowardTotal bool
}

func (i Interval) Duration() time.Duration {
	return i.EndsAt.Sub(i.StartsAt)
}

// EventWindow holds one year's event boundaries. Pre-event is everything
// before the pre boundary, post-event everything at or after EventEnd. When
// PreEventSplit is set it replaces EventStart as the pre/event boundary.
type EventWindow struct {
	Year          int
	EventStart    time.Time
	EventEnd      time.Time
	PreEventSplit *time.Time
}

func (w EventWindow) PreBoundary() time.Time {
	if w.PreEventSplit != nil {
		return *w.PreEventSplit
	}
	return w.EventStart
}
