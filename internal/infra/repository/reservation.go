package repository

import (
	"context"
	"time"

	"shiftcore/internal/domain/slot"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

// Create relies on the unique (person_id, slot_id) index as the backstop for
// the duplicate fast path; a violation surfaces as KindDuplicateKey.
func (r *ReservationRepository) Create(ctx context.Context, personID, slotID uuid.UUID, at time.Time) error {
	const q = `
		INSERT INTO reservations (id, person_id, slot_id, created_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, q, uuid.New(), personID, slotID, at); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Find(ctx context.Context, personID, slotID uuid.UUID) (*slot.Reservation, error) {
	const q = `
		SELECT person_id, slot_id, created_at
		FROM reservations
		WHERE person_id = $1 AND slot_id = $2`

	var res slot.Reservation
	err := r.db.QueryRow(ctx, q, personID, slotID).Scan(&res.PersonID, &res.SlotID, &res.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, personID, slotID uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE person_id = $1 AND slot_id = $2`

	tag, err := r.db.Exec(ctx, q, personID, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ListBySlot(ctx context.Context, slotID uuid.UUID) ([]slot.Reservation, error) {
	const q = `
		SELECT person_id, slot_id, created_at
		FROM reservations
		WHERE slot_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, slotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []slot.Reservation
	for rows.Next() {
		var res slot.Reservation
		if err := rows.Scan(&res.PersonID, &res.SlotID, &res.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return result, nil
}

func (r *ReservationRepository) DeleteAllForSlot(ctx context.Context, slotID uuid.UUID) (int64, error) {
	const q = `DELETE FROM reservations WHERE slot_id = $1`

	tag, err := r.db.Exec(ctx, q, slotID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to bulk delete reservations", err)
	}
	return tag.RowsAffected(), nil
}
