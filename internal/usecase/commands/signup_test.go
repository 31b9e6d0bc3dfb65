//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shiftcore/internal/domain/slot"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/clock"
	"shiftcore/internal/usecase/commands"
	"shiftcore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// In-memory unit of work. Within holds a mutex for the whole transaction,
// standing in for the slot row lock, and works on a snapshot that is only
// committed when the closure returns nil.
// ----------------------------------------------------------------------------

type resKey struct {
	person uuid.UUID
	slot   uuid.UUID
}

type memState struct {
	slots        map[uuid.UUID]slot.Slot
	reservations map[resKey]slot.Reservation
	eligibility  map[resKey]bool // person x category
}

func (s *memState) clone() *memState {
	c := &memState{
		slots:        make(map[uuid.UUID]slot.Slot, len(s.slots)),
		reservations: make(map[resKey]slot.Reservation, len(s.reservations)),
		eligibility:  make(map[resKey]bool, len(s.eligibility)),
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.eligibility {
		c.eligibility[k] = v
	}
	return c
}

type memUoW struct {
	mu    sync.Mutex
	state *memState
}

func newMemUoW() *memUoW {
	return &memUoW{state: &memState{
		slots:        make(map[uuid.UUID]slot.Slot),
		reservations: make(map[resKey]slot.Reservation),
		eligibility:  make(map[resKey]bool),
	}}
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	working := u.state.clone()
	if err := fn(ctx, &memTx{state: working}); err != nil {
		return err
	}
	u.state = working
	return nil
}

type memTx struct {
	state *memState
}

func (t *memTx) Slots() shared.SlotRepository            { return &memSlots{state: t.state} }
func (t *memTx) Reservations() shared.ReservationRepository { return &memReservations{state: t.state} }
func (t *memTx) Eligibility() shared.EligibilityReader   { return &memEligibility{state: t.state} }
func (t *memTx) DB() db.DBTX                             { return nil }

type memSlots struct {
	state *memState
}

func (r *memSlots) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*slot.Slot, error) {
	s, ok := r.state.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return &s, nil
}

func (r *memSlots) IncrementSignedUp(_ context.Context, id uuid.UUID) (int32, error) {
	s, ok := r.state.slots[id]
	if !ok {
		return 0, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	s.SignedUp++
	r.state.slots[id] = s
	return s.SignedUp, nil
}

func (r *memSlots) DecrementSignedUp(_ context.Context, id uuid.UUID) (int32, error) {
	s, ok := r.state.slots[id]
	if !ok {
		return 0, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	if s.SignedUp > 0 {
		s.SignedUp--
	}
	r.state.slots[id] = s
	return s.SignedUp, nil
}

type memReservations struct {
	state *memState
}

func (r *memReservations) Create(_ context.Context, personID, slotID uuid.UUID, at time.Time) error {
	key := resKey{person: personID, slot: slotID}
	if _, ok := r.state.reservations[key]; ok {
		return infra.WrapRepoErr("duplicate reservation", nil, infra.KindDuplicateKey)
	}
	r.state.reservations[key] = slot.Reservation{PersonID: personID, SlotID: slotID, CreatedAt: at}
	return nil
}

func (r *memReservations) Find(_ context.Context, personID, slotID uuid.UUID) (*slot.Reservation, error) {
	res, ok := r.state.reservations[resKey{person: personID, slot: slotID}]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &res, nil
}

func (r *memReservations) Delete(_ context.Context, personID, slotID uuid.UUID) error {
	key := resKey{person: personID, slot: slotID}
	if _, ok := r.state.reservations[key]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.state.reservations, key)
	return nil
}

func (r *memReservations) ListBySlot(_ context.Context, slotID uuid.UUID) ([]slot.Reservation, error) {
	var out []slot.Reservation
	for _, res := range r.state.reservations {
		if res.SlotID == slotID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *memReservations) DeleteAllForSlot(_ context.Context, slotID uuid.UUID) (int64, error) {
	var removed int64
	for key, res := range r.state.reservations {
		if res.SlotID == slotID {
			delete(r.state.reservations, key)
			removed++
		}
	}
	return removed, nil
}

type memEligibility struct {
	state *memState
}

func (r *memEligibility) HasEligibility(_ context.Context, personID, categoryID uuid.UUID) (bool, error) {
	return r.state.eligibility[resKey{person: personID, slot: categoryID}], nil
}

// memReads serves the lock-free duplicate fast path from committed state.
type memReads struct {
	uow *memUoW
}

func (r *memReads) Exists(_ context.Context, personID, slotID uuid.UUID) (bool, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	_, ok := r.uow.state.reservations[resKey{person: personID, slot: slotID}]
	return ok, nil
}

type memAudit struct {
	mu     sync.Mutex
	events []shared.AuditEvent
}

func (a *memAudit) Record(_ context.Context, event shared.AuditEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return nil
}

// ----------------------------------------------------------------------------
// Fixture
// ----------------------------------------------------------------------------

type fixture struct {
	uow      *memUoW
	audit    *memAudit
	commands commands.SignupCommands
	category uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	uow := newMemUoW()
	audit := &memAudit{}
	mc := clock.NewMockClock(time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC))
	return &fixture{
		uow:      uow,
		audit:    audit,
		commands: commands.NewSignupCommands(uow, &memReads{uow: uow}, audit, mc),
		category: uuid.New(),
	}
}

func (f *fixture) addSlot(max, signedUp int32, active bool) uuid.UUID {
	id := uuid.New()
	start := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	f.uow.state.slots[id] = slot.Slot{
		ID:         id,
		CategoryID: f.category,
		StartsAt:   start,
		EndsAt:     start.Add(12 * time.Hour),
		Max:        max,
		SignedUp:   signedUp,
		Active:     active,
	}
	return id
}

func (f *fixture) addPerson(eligible bool) uuid.UUID {
	id := uuid.New()
	f.uow.state.eligibility[resKey{person: id, slot: f.category}] = eligible
	return id
}

func (f *fixture) signedUp(t *testing.T, slotID uuid.UUID) int32 {
	t.Helper()
	s, ok := f.uow.state.slots[slotID]
	require.True(t, ok)
	return s.SignedUp
}

// ----------------------------------------------------------------------------
// AddToSchedule
// ----------------------------------------------------------------------------

func TestAddToSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("success increments the counter", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusSuccess, result.Status)
		assert.Equal(t, int32(1), result.SignedUp)
		assert.False(t, result.Forced)
		assert.Equal(t, int32(1), f.signedUp(t, slotID))
	})

	t.Run("missing slot", func(t *testing.T) {
		f := newFixture(t)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, uuid.New(), false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusNoSlot, result.Status)
	})

	t.Run("inactive slot leaves no trace", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, false)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusNotActive, result.Status)
		assert.Equal(t, int32(0), f.signedUp(t, slotID))
		assert.Empty(t, f.uow.state.reservations)
	})

	t.Run("missing eligibility", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(false)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusNoEligibility, result.Status)
	})

	t.Run("full slot without force", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(1, 1, true)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusFull, result.Status)
		assert.Equal(t, int32(1), result.SignedUp)
		assert.Equal(t, int32(1), f.signedUp(t, slotID))
	})

	t.Run("force pushes past capacity and is reported", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(1, 1, true)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, true)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusSuccess, result.Status)
		assert.Equal(t, int32(2), result.SignedUp)
		assert.True(t, result.Forced)
	})

	t.Run("force below capacity is a plain success", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(true)

		result, err := f.commands.AddToSchedule(ctx, person, slotID, true)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusSuccess, result.Status)
		assert.False(t, result.Forced)
	})

	t.Run("duplicate signup is reported, not duplicated", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(true)

		first, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		require.Equal(t, slot.StatusSuccess, first.Status)

		second, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)
		assert.Equal(t, slot.StatusAlreadyReserved, second.Status)
		assert.Equal(t, int32(1), f.signedUp(t, slotID))
	})

	t.Run("concurrent signups never exceed capacity", func(t *testing.T) {
		f := newFixture(t)
		const capacity = 3
		const contenders = 10
		slotID := f.addSlot(capacity, 0, true)

		people := make([]uuid.UUID, contenders)
		for i := range people {
			people[i] = f.addPerson(true)
		}

		results := make([]slot.Status, contenders)
		errs := make([]error, contenders)
		var wg sync.WaitGroup
		for i, person := range people {
			wg.Add(1)
			go func(i int, person uuid.UUID) {
				defer wg.Done()
				result, err := f.commands.AddToSchedule(ctx, person, slotID, false)
				if err != nil {
					errs[i] = err
					return
				}
				results[i] = result.Status
			}(i, person)
		}
		wg.Wait()

		for _, err := range errs {
			require.NoError(t, err)
		}

		var succeeded, full int
		for _, status := range results {
			switch status {
			case slot.StatusSuccess:
				succeeded++
			case slot.StatusFull:
				full++
			default:
				t.Fatalf("unexpected status %q", status)
			}
		}
		assert.Equal(t, capacity, succeeded)
		assert.Equal(t, contenders-capacity, full)
		assert.Equal(t, int32(capacity), f.signedUp(t, slotID))
	})
}

// ----------------------------------------------------------------------------
// DeleteFromSchedule
// ----------------------------------------------------------------------------

func TestDeleteFromSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the reservation and decrements", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(true)

		_, err := f.commands.AddToSchedule(ctx, person, slotID, false)
		require.NoError(t, err)

		result, err := f.commands.DeleteFromSchedule(ctx, person, slotID)
		require.NoError(t, err)
		assert.Equal(t, int32(0), result.SignedUp)
		assert.Empty(t, f.uow.state.reservations)
	})

	t.Run("missing reservation is an error", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 1, true)
		person := f.addPerson(true)

		_, err := f.commands.DeleteFromSchedule(ctx, person, slotID)
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
		assert.Equal(t, int32(1), f.signedUp(t, slotID), "counter must be untouched")
	})

	t.Run("counter floors at zero", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(3, 0, true)
		person := f.addPerson(true)

		// Reservation exists but the counter is already zero: a prior
		// inconsistency the removal must not turn into a negative count.
		f.uow.state.reservations[resKey{person: person, slot: slotID}] = slot.Reservation{
			PersonID: person, SlotID: slotID, CreatedAt: time.Now(),
		}

		result, err := f.commands.DeleteFromSchedule(ctx, person, slotID)
		require.NoError(t, err)
		assert.Equal(t, int32(0), result.SignedUp)
	})
}

// ----------------------------------------------------------------------------
// RemoveAllFromSlot
// ----------------------------------------------------------------------------

func TestRemoveAllFromSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("audits every member before deleting", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(5, 0, true)
		actor := uuid.New()

		var people []uuid.UUID
		for i := 0; i < 3; i++ {
			person := f.addPerson(true)
			people = append(people, person)
			_, err := f.commands.AddToSchedule(ctx, person, slotID, false)
			require.NoError(t, err)
		}

		removed, err := f.commands.RemoveAllFromSlot(ctx, slotID, &actor, "slot cancelled")
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		assert.Empty(t, f.uow.state.reservations)

		require.Len(t, f.audit.events, 3)
		audited := make(map[string]bool)
		for _, ev := range f.audit.events {
			assert.Equal(t, commands.AuditActionBulkRemove, ev.Action)
			assert.Equal(t, "reservation", ev.Entity)
			require.NotNil(t, ev.ActorID)
			assert.Equal(t, actor, *ev.ActorID)
			assert.Equal(t, slotID.String(), ev.Meta["slot_id"])
			assert.Equal(t, "slot cancelled", ev.Meta["reason"])
			audited[ev.EntityID] = true
		}
		for _, person := range people {
			assert.True(t, audited[person.String()], "member %s missing from audit trail", person)
		}
	})

	t.Run("empty slot removes nothing and writes no audit", func(t *testing.T) {
		f := newFixture(t)
		slotID := f.addSlot(5, 0, true)

		removed, err := f.commands.RemoveAllFromSlot(ctx, slotID, nil, "")
		require.NoError(t, err)
		assert.Zero(t, removed)
		assert.Empty(t, f.audit.events)
	})

	t.Run("slot row already gone still clears reservations", func(t *testing.T) {
		f := newFixture(t)
		slotID := uuid.New()
		person := f.addPerson(true)
		f.uow.state.reservations[resKey{person: person, slot: slotID}] = slot.Reservation{
			PersonID: person, SlotID: slotID, CreatedAt: time.Now(),
		}

		removed, err := f.commands.RemoveAllFromSlot(ctx, slotID, nil, "cascade")
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)
		assert.Empty(t, f.uow.state.reservations)
	})
}
