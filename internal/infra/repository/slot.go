package repository

import (
	"context"

	"shiftcore/internal/domain/slot"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// FindByIDForUpdate holds the row lock until the surrounding transaction
// ends. Validation against the returned snapshot therefore cannot race with
// another signup on the same slot.
func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*slot.Slot, error) {
	const q = `
		SELECT id, category_id, starts_at, ends_at, max_signups, signed_up, active
		FROM slots
		WHERE id = $1
		FOR UPDATE`

	var s slot.Slot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.CategoryID, &s.StartsAt, &s.EndsAt, &s.Max, &s.SignedUp, &s.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	return &s, nil
}

func (r *SlotRepository) IncrementSignedUp(ctx context.Context, id uuid.UUID) (int32, error) {
	const q = `UPDATE slots SET signed_up = signed_up + 1 WHERE id = $1 RETURNING signed_up`

	var signedUp int32
	if err := r.db.QueryRow(ctx, q, id).Scan(&signedUp); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment signed_up", err)
	}
	return signedUp, nil
}

func (r *SlotRepository) DecrementSignedUp(ctx context.Context, id uuid.UUID) (int32, error) {
	const q = `UPDATE slots SET signed_up = GREATEST(signed_up - 1, 0) WHERE id = $1 RETURNING signed_up`

	var signedUp int32
	if err := r.db.QueryRow(ctx, q, id).Scan(&signedUp); err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to decrement signed_up", err)
	}
	return signedUp, nil
}
