package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditEvent mirrors one audit_logs row. ActorID is nil for system-initiated
// actions such as a slot-deletion cascade.
type AuditEvent struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Meta     map[string]any
	At       time.Time
}

// AuditRecorder persists audit events outside the mutating transaction, so
// the trail survives even when the destructive operation is interrupted.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}
