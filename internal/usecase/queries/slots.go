package queries

import (
	"context"

	"shiftcore/internal/infra"
	"shiftcore/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*SlotView, error)
}

type SlotQueries interface {
	GetSlot(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListPersonSlots(ctx context.Context, personID uuid.UUID) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	slots SlotReadStore
}

func NewSlotQueries(slots SlotReadStore) SlotQueries {
	return &slotQueriesImpl{slots: slots}
}

func (q *slotQueriesImpl) GetSlot(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.slots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSlotNotFound)
		}
		return nil, errs.Wrap(err, "failed to find slot")
	}
	return view, nil
}

func (q *slotQueriesImpl) ListPersonSlots(ctx context.Context, personID uuid.UUID) ([]*SlotView, error) {
	views, err := q.slots.FindByPersonID(ctx, personID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list person slots")
	}
	return views, nil
}
