package response

import (
	"shiftcore/internal/domain/slot"
	"shiftcore/internal/usecase/commands"
)

type SignupResponse struct {
	Status   string `json:"status"`
	SignedUp int32  `json:"signed_up"`
	Forced   bool   `json:"forced,omitempty"`
}

type RemovalResponse struct {
	SignedUp int32 `json:"signed_up"`
}

type BulkRemovalResponse struct {
	Removed int64 `json:"removed"`
}

func FromSignupResult(r *slot.SignupResult) *SignupResponse {
	return &SignupResponse{
		Status:   string(r.Status),
		SignedUp: r.SignedUp,
		Forced:   r.Forced,
	}
}

func FromRemovalResult(r *commands.RemovalResult) *RemovalResponse {
	return &RemovalResponse{SignedUp: r.SignedUp}
}
