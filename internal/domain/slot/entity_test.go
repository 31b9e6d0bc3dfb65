//go:build unit

package slot_test

import (
	"testing"
	"time"

	"shiftcore/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newSlot(max, signedUp int32, active bool) *slot.Slot {
	now := time.Now()
	return &slot.Slot{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		StartsAt:   now,
		EndsAt:     now.Add(4 * time.Hour),
		Max:        max,
		SignedUp:   signedUp,
		Active:     active,
	}
}

func TestSlotFull(t *testing.T) {
	assert.False(t, newSlot(3, 2, true).Full())
	assert.True(t, newSlot(3, 3, true).Full())
	// A forced override can push the counter past max; still full.
	assert.True(t, newSlot(3, 4, true).Full())
	assert.True(t, newSlot(0, 0, true).Full())
}

func TestValidateSignup(t *testing.T) {
	cases := []struct {
		name     string
		slot     *slot.Slot
		eligible bool
		forced   bool
		want     slot.Status
	}{
		{
			name:     "open slot with eligibility succeeds",
			slot:     newSlot(3, 1, true),
			eligible: true,
			want:     slot.StatusSuccess,
		},
		{
			name:     "inactive slot rejected",
			slot:     newSlot(3, 1, false),
			eligible: true,
			want:     slot.StatusNotActive,
		},
		{
			name:     "missing eligibility rejected",
			slot:     newSlot(3, 1, true),
			eligible: false,
			want:     slot.StatusNoEligibility,
		},
		{
			name:     "full slot rejected",
			slot:     newSlot(3, 3, true),
			eligible: true,
			want:     slot.StatusFull,
		},
		{
			name:     "force bypasses capacity only",
			slot:     newSlot(3, 3, true),
			eligible: true,
			forced:   true,
			want:     slot.StatusSuccess,
		},
		{
			name:     "force does not bypass inactive",
			slot:     newSlot(3, 3, false),
			eligible: true,
			forced:   true,
			want:     slot.StatusNotActive,
		},
		{
			name:     "force does not bypass eligibility",
			slot:     newSlot(3, 3, true),
			eligible: false,
			forced:   true,
			want:     slot.StatusNoEligibility,
		},
		{
			name:     "inactive wins over missing eligibility",
			slot:     newSlot(3, 3, false),
			eligible: false,
			want:     slot.StatusNotActive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.slot.ValidateSignup(tc.eligible, tc.forced))
		})
	}
}
