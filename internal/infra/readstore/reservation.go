package readstore

import (
	"context"

	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

// Exists backs the duplicate fast path checked before any lock is taken.
func (r *ReservationReadStore) Exists(ctx context.Context, personID, slotID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE person_id = $1 AND slot_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, personID, slotID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reservation existence", err)
	}
	return exists, nil
}
