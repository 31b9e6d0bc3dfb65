package request

import (
	"strings"

	"github.com/google/uuid"
)

// SignupRequest carries an optional PersonID so admins can sign someone else
// up; volunteers always act on their own behalf and the field is ignored.
type SignupRequest struct {
	PersonID *uuid.UUID `json:"person_id,omitempty"`
	Force    bool       `json:"force,omitempty"`
}

// ResolvePersonID returns the target of the signup: the override when an
// admin supplied one, the authenticated person otherwise.
func (r SignupRequest) ResolvePersonID(authenticated uuid.UUID, isAdmin bool) uuid.UUID {
	if isAdmin && r.PersonID != nil && *r.PersonID != uuid.Nil {
		return *r.PersonID
	}
	return authenticated
}

type BulkRemoveRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (r BulkRemoveRequest) GetReason() string {
	return strings.TrimSpace(r.Reason)
}
