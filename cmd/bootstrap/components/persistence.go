package components

import (
	"surplusfood-api/internal/infra/db"
	"surplusfood-api/internal/infra/readstore"
	"surplusfood-api/internal/infra/uow"
	"surplusfood-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageViewRepo)),
		),
		fx.Annotate(
			readstore.NewOutletReadStore,
			fx.As(new(queries.OutletViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
