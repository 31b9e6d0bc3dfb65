package shared

import (
	"context"
	"time"

	"shiftcore/internal/domain/slot"
	"shiftcore/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes a write transaction. Every mutation of a slot's
// reservation set happens inside Within while holding the slot row lock.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Slots() SlotRepository
	Reservations() ReservationRepository
	Eligibility() EligibilityReader
	DB() db.DBTX
}

type SlotRepository interface {
	// FindByIDForUpdate acquires the exclusive row lock that serializes
	// concurrent signups against the same slot.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error)
	IncrementSignedUp(ctx context.Context, id uuid.UUID) (int32, error)
	// DecrementSignedUp floors at zero rather than propagating a prior
	// inconsistency.
	DecrementSignedUp(ctx context.Context, id uuid.UUID) (int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, personID, slotID uuid.UUID, at time.Time) error
	Find(ctx context.Context, personID, slotID uuid.UUID) (*slot.Reservation, error)
	Delete(ctx context.Context, personID, slotID uuid.UUID) error
	ListBySlot(ctx context.Context, slotID uuid.UUID) ([]slot.Reservation, error)
	DeleteAllForSlot(ctx context.Context, slotID uuid.UUID) (int64, error)
}

// EligibilityReader answers the person-holds-category capability fact; the
// relation is owned elsewhere and read-only here.
type EligibilityReader interface {
	HasEligibility(ctx context.Context, personID, categoryID uuid.UUID) (bool, error)
}
