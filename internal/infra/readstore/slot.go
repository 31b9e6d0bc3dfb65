package readstore

import (
	"context"

	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/pgconv"
	"shiftcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	const q = `
		SELECT id, category_id, starts_at, ends_at, max_signups, signed_up, active
		FROM slots
		WHERE id = $1`

	var v queries.SlotView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.CategoryID, &v.StartsAt, &v.EndsAt, &v.Max, &v.SignedUp, &v.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return &v, nil
}

// FindByPersonID returns the slots a person currently holds a reservation
// on, newest reservation first.
func (r *SlotReadStore) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*queries.SlotView, error) {
	const q = `
		SELECT s.id, s.category_id, s.starts_at, s.ends_at, s.max_signups, s.signed_up, s.active,
		       r.created_at AS reserved_at
		FROM slots s
		JOIN reservations r ON r.slot_id = s.id
		WHERE r.person_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, q, personID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots for person", err)
	}
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		var reservedAt pgtype.Timestamptz
		if err := rows.Scan(
			&v.ID, &v.CategoryID, &v.StartsAt, &v.EndsAt, &v.Max, &v.SignedUp, &v.Active,
			&reservedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		v.ReservedAt = pgconv.TimePtrFromPgtype(reservedAt)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot rows", err)
	}
	return result, nil
}
