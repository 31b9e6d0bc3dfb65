package response

import (
	"time"

	"shiftcore/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID uuid.UUID  `json:"category_id"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     time.Time  `json:"ends_at"`
	Max        int32      `json:"max"`
	SignedUp   int32      `json:"signed_up"`
	Active     bool       `json:"active"`
	ReservedAt *time.Time `json:"reserved_at,omitempty"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:         v.ID,
		CategoryID: v.CategoryID,
		StartsAt:   v.StartsAt,
		EndsAt:     v.EndsAt,
		Max:        v.Max,
		SignedUp:   v.SignedUp,
		Active:     v.Active,
		ReservedAt: v.ReservedAt,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromSlotView(v))
	}
	return out
}
