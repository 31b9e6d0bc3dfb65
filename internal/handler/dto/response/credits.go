package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditsResponse struct {
	CategoryID uuid.UUID `json:"category_id"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Year       int       `json:"year"`
	Credits    string    `json:"credits"`
}

// Credits are rendered as a decimal string so callers never see float noise.
func NewCreditsResponse(category uuid.UUID, start, end time.Time, year int, credits decimal.Decimal) *CreditsResponse {
	return &CreditsResponse{
		CategoryID: category,
		StartsAt:   start,
		EndsAt:     end,
		Year:       year,
		Credits:    credits.String(),
	}
}
