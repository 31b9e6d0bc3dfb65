package slot

import (
	"time"

	"github.com/google/uuid"
)

// Slot is a capacity-bounded reservation bucket for one resource category.
// SignedUp is mutated only through the signup commands while the row is
// locked; it never goes below zero.
type Slot struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Max        int32
	SignedUp   int32
	Active     bool
}

func (s *Slot) Full() bool {
	return s.SignedUp >= s.Max
}

// ValidateSignup re-checks the signup conditions against the locked row.
// The order matters: an inactive slot wins over eligibility, eligibility
// over capacity. A forced signup bypasses only the capacity check.
func (s *Slot) ValidateSignup(eligible, forced bool) Status {
	if !s.Active {
		return StatusNotActive
	}
	if !eligible {
		return StatusNoEligibility
	}
	if s.Full() && !forced {
		return StatusFull
	}
	return StatusSuccess
}

// Reservation is a person's claim on one unit of a slot's capacity.
type Reservation struct {
	PersonID  uuid.UUID
	SlotID    uuid.UUID
	CreatedAt time.Time
}
