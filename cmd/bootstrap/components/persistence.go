package components

import (
	"stable-booking/internal/infra/readstore"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/infra/uow"
	"stable-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

// The generated Queries also backs each read store's query port.
var baseOption = fx.Provide(
	fx.Annotate(
		NewSQLQueries,
		fx.As(
			fx.Self(),
			new(readstore.BookingViewQueries),
			new(readstore.LeaderboardQueries),
			new(readstore.ListingQueries),
		),
	),
	NewDBTX,
)

// Command-side repositories are created per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewLeaderboardReadStore,
			fx.As(new(queries.LeaderboardReadStore)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
