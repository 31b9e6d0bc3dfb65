package readstore

import (
	"context"

	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"

	"github.com/google/uuid"
)

type EligibilityReadStore struct {
	db db.DBTX
}

func NewEligibilityReadStore(dbtx db.DBTX) *EligibilityReadStore {
	return &EligibilityReadStore{db: dbtx}
}

func (r *EligibilityReadStore) HasEligibility(ctx context.Context, personID, categoryID uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM person_eligibilities
			WHERE person_id = $1 AND category_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, personID, categoryID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check eligibility", err)
	}
	return exists, nil
}
