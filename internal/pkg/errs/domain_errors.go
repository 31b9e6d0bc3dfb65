package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	ErrSlotNotFound = errors.New("slot not found")
)
