package components

import (
	"stokship/internal/infra/readrepo"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/infra/uow"
	"stokship/internal/usecase/queries"
	"stokship/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readrepoModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readrepoModule = fx.Module("persistence/readrepo",
	fx.Provide(
		// Deal
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readrepo.DealViewQueries)),
		),
		fx.Annotate(
			readrepo.NewDealViewRepository,
			fx.As(new(queries.DealViewRepo)),
		),
		// OfferItem
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readrepo.OfferItemViewQueries)),
		),
		fx.Annotate(
			readrepo.NewOfferItemViewRepository,
			fx.As(new(queries.OfferItemViewRepo)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			uow.NewAdvisoryRunLock,
			fx.As(new(shared.RunLock)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
