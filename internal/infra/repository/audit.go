package repository

import (
	"context"
	"encoding/json"

	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/usecase/shared"
)

// AuditLogger writes on the pool, not a transaction: the audit record for a
// destructive bulk operation must exist even if the operation itself is
// later interrupted.
type AuditLogger struct {
	db db.DBTX
}

func NewAuditLogger(dbtx db.DBTX) *AuditLogger {
	return &AuditLogger{db: dbtx}
}

func (l *AuditLogger) Record(ctx context.Context, event shared.AuditEvent) error {
	metaJSON, err := json.Marshal(event.Meta)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal audit meta", err)
	}

	const q = `
		INSERT INTO audit_logs (actor_id, action, entity, entity_id, meta, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := l.db.Exec(ctx, q, event.ActorID, event.Action, event.Entity, event.EntityID, metaJSON, event.At); err != nil {
		return infra.WrapRepoErr("failed to record audit log", err)
	}
	return nil
}
