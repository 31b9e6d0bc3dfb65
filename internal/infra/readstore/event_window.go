package readstore

import (
	"context"

	"shiftcore/internal/domain/worklog"
	"shiftcore/internal/infra"
	"shiftcore/internal/infra/db"
	"shiftcore/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventWindowReadStore struct {
	db db.DBTX
}

func NewEventWindowReadStore(dbtx db.DBTX) *EventWindowReadStore {
	return &EventWindowReadStore{db: dbtx}
}

// FindByYear reports KindNotFound for years without an event window; the
// summary query degrades to its single-bucket mode rather than failing.
func (r *EventWindowReadStore) FindByYear(ctx context.Context, year int) (*worklog.EventWindow, error) {
	const q = `
		SELECT year, event_start, event_end, pre_event_split
		FROM event_windows
		WHERE year = $1`

	var w worklog.EventWindow
	var split pgtype.Timestamptz
	err := r.db.QueryRow(ctx, q, year).Scan(&w.Year, &w.EventStart, &w.EventEnd, &split)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event window not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event window", err)
	}
	w.PreEventSplit = pgconv.TimePtrFromPgtype(split)
	return &w, nil
}
