package components

import (
	"shiftcore/internal/infra/db"
	"shiftcore/internal/infra/ratecache"
	"shiftcore/internal/infra/readstore"
	"shiftcore/internal/infra/repository"
	"shiftcore/internal/infra/uow"
	"shiftcore/internal/pkg/config"
	"shiftcore/internal/usecase/commands"
	"shiftcore/internal/usecase/queries"
	"shiftcore/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Reservation fast path
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(commands.ReservationReads)),
		),
		// Time entries
		fx.Annotate(
			readstore.NewTimeEntryReadStore,
			fx.As(new(queries.TimeEntryReadStore)),
		),
		// Event windows
		fx.Annotate(
			readstore.NewEventWindowReadStore,
			fx.As(new(queries.EventWindowReadStore)),
		),
		// Rate intervals, wrapped in the LRU store
		fx.Annotate(
			readstore.NewRateIntervalReadStore,
			fx.As(new(ratecache.RateSource)),
		),
		fx.Annotate(
			NewRateSchedule,
			fx.As(new(queries.RateSchedule)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork; slot/reservation/eligibility repositories are built
		// lazily inside each transaction.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Audit trail writes go through the pool, outside any caller tx.
		fx.Annotate(
			repository.NewAuditLogger,
			fx.As(new(shared.AuditRecorder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRateSchedule(source ratecache.RateSource, cfg config.Config) (*ratecache.Store, error) {
	return ratecache.New(source, cfg.Rates.Size)
}
