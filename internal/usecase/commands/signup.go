package commands

import (
	"context"
	"errors"

	"shiftcore/internal/domain/slot"
	"shiftcore/internal/infra"
	"shiftcore/internal/pkg/clock"
	"shiftcore/internal/pkg/errs"
	"shiftcore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	// errAborted rolls back a transaction whose outcome is a business
	// status, not an error; it never leaves this package.
	errAborted = errs.New("signup aborted")
)

const AuditActionBulkRemove = "reservation.bulk_remove"

type RemovalResult struct {
	SignedUp int32
}

// ReservationReads is the lock-free fast path used before any transaction is
// opened; the unique index backs it up inside the lock.
type ReservationReads interface {
	Exists(ctx context.Context, personID, slotID uuid.UUID) (bool, error)
}

type SignupCommands interface {
	AddToSchedule(ctx context.Context, personID, slotID uuid.UUID, force bool) (*slot.SignupResult, error)
	DeleteFromSchedule(ctx context.Context, personID, slotID uuid.UUID) (*RemovalResult, error)
	RemoveAllFromSlot(ctx context.Context, slotID uuid.UUID, actorID *uuid.UUID, reason string) (int64, error)
}

type signupCommandsImpl struct {
	uow   shared.UnitOfWork
	reads ReservationReads
	audit shared.AuditRecorder
	clock clock.Clock
}

func NewSignupCommands(
	uow shared.UnitOfWork,
	reads ReservationReads,
	audit shared.AuditRecorder,
	clock clock.Clock,
) SignupCommands {
	return &signupCommandsImpl{
		uow:   uow,
		reads: reads,
		audit: audit,
		clock: clock,
	}
}

// AddToSchedule is the only path that creates a reservation. The duplicate
// check runs before the lock so repeated clicks never contend; everything
// else is validated again inside the transaction against the locked slot
// row, because active/eligibility/capacity may all have changed since any
// earlier read.
func (s *signupCommandsImpl) AddToSchedule(ctx context.Context, personID, slotID uuid.UUID, force bool) (*slot.SignupResult, error) {
	exists, err := s.reads.Exists(ctx, personID, slotID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return &slot.SignupResult{Status: slot.StatusAlreadyReserved}, nil
	}

	var result *slot.SignupResult
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Slots().FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				result = &slot.SignupResult{Status: slot.StatusNoSlot}
				return errAborted
			}
			return err
		}

		eligible, err := tx.Eligibility().HasEligibility(ctx, personID, locked.CategoryID)
		if err != nil {
			return err
		}

		if status := locked.ValidateSignup(eligible, force); status != slot.StatusSuccess {
			result = &slot.SignupResult{Status: status, SignedUp: locked.SignedUp}
			return errAborted
		}

		if err := tx.Reservations().Create(ctx, personID, slotID, s.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Lost the race between the fast path and the lock.
				result = &slot.SignupResult{Status: slot.StatusAlreadyReserved, SignedUp: locked.SignedUp}
				return errAborted
			}
			return err
		}

		signedUp, err := tx.Slots().IncrementSignedUp(ctx, slotID)
		if err != nil {
			return err
		}

		result = &slot.SignupResult{
			Status:   slot.StatusSuccess,
			SignedUp: signedUp,
			Forced:   force && locked.Full(),
		}
		return nil
	})
	if err != nil && !errors.Is(err, errAborted) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

// DeleteFromSchedule removes one reservation and decrements the counter as
// a single unit. Unlike signup's duplicate path, removing a reservation that
// does not exist is a caller error, not a no-op.
func (s *signupCommandsImpl) DeleteFromSchedule(ctx context.Context, personID, slotID uuid.UUID) (*RemovalResult, error) {
	var result *RemovalResult
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().Find(ctx, personID, slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		// Lock the owning slot so the row delete and counter move together.
		if _, err := tx.Slots().FindByIDForUpdate(ctx, slotID); err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, personID, slotID); err != nil {
			return err
		}

		signedUp, err := tx.Slots().DecrementSignedUp(ctx, slotID)
		if err != nil {
			return err
		}

		result = &RemovalResult{SignedUp: signedUp}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result, nil
}

// RemoveAllFromSlot is the slot-deletion cascade. Audit events are written
// and committed before the bulk delete runs, so a record of who was removed
// exists even if the delete is interrupted.
func (s *signupCommandsImpl) RemoveAllFromSlot(ctx context.Context, slotID uuid.UUID, actorID *uuid.UUID, reason string) (int64, error) {
	var members []slot.Reservation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		members, err = tx.Reservations().ListBySlot(ctx, slotID)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(members) == 0 {
		return 0, nil
	}

	now := s.clock.Now()
	for _, m := range members {
		event := shared.AuditEvent{
			ActorID:  actorID,
			Action:   AuditActionBulkRemove,
			Entity:   "reservation",
			EntityID: m.PersonID.String(),
			Meta: map[string]any{
				"slot_id": slotID.String(),
				"reason":  reason,
			},
			At: now,
		}
		if err := s.audit.Record(ctx, event); err != nil {
			return 0, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	var removed int64
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().FindByIDForUpdate(ctx, slotID); err != nil {
			// The slot row may already be gone mid-cascade; the
			// reservations still need removing.
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}
		var err error
		removed, err = tx.Reservations().DeleteAllForSlot(ctx, slotID)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return removed, nil
}
