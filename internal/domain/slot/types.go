package slot

// Status is the terminal outcome of one signup attempt. These are routine
// business outcomes a caller branches on, not errors.
type Status string

const (
	StatusSuccess         Status = "success"
	StatusFull            Status = "full"
	StatusNoSlot          Status = "no-slot"
	StatusNotActive       Status = "not-active"
	StatusNoEligibility   Status = "no-eligibility"
	StatusAlreadyReserved Status = "already-reserved"
)

// SignupResult reports the outcome of AddToSchedule. SignedUp carries the
// counter value observed (post-increment on success); Forced is true only
// when the signup succeeded past capacity because of an override.
type SignupResult struct {
	Status   Status
	SignedUp int32
	Forced   bool
}
