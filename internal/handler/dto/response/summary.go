package response

import (
	"shiftcore/internal/usecase/queries"
)

type WorkSummaryResponse struct {
	Year              int     `json:"year"`
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

func FromWorkSummary(year int, s *queries.WorkSummary) *WorkSummaryResponse {
	return &WorkSummaryResponse{
		Year:              year,
		PreEventDuration:  s.PreEventDuration,
		PreEventCredits:   s.PreEventCredits,
		EventDuration:     s.EventDuration,
		EventCredits:      s.EventCredits,
		PostEventDuration: s.PostEventDuration,
		PostEventCredits:  s.PostEventCredits,
		OtherDuration:     s.OtherDuration,
		TotalDuration:     s.TotalDuration,
		TotalCredits:      s.TotalCredits,
		NoEventDates:      s.NoEventDates,
	}
}
