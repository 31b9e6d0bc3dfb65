package queries

import (
	"time"

	"github.com/google/uuid"
)

// SlotView is the read model served to schedule screens; SignedUp reflects
// the cached counter maintained by the signup commands.
type SlotView struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID uuid.UUID  `json:"category_id"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     time.Time  `json:"ends_at"`
	Max        int32      `json:"max"`
	SignedUp   int32      `json:"signed_up"`
	Active     bool       `json:"active"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

// WorkSummary is the per-person, per-year rollup. Durations are whole
// seconds; credits are decimal values rendered as floats at the boundary.
type WorkSummary struct {
	PreEventDuration  int64   `json:"pre_event_duration"`
	PreEventCredits   float64 `json:"pre_event_credits"`
	EventDuration     int64   `json:"event_duration"`
	EventCredits      float64 `json:"event_credits"`
	PostEventDuration int64   `json:"post_event_duration"`
	PostEventCredits  float64 `json:"post_event_credits"`
	OtherDuration     int64   `json:"other_duration"`
	TotalDuration     int64   `json:"total_duration"`
	TotalCredits      float64 `json:"total_credits"`
	NoEventDates      bool    `json:"no_event_dates,omitempty"`
}
