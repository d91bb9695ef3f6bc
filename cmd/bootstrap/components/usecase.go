package components

import (
	"surplusfood-api/internal/pkg/clock"
	"surplusfood-api/internal/usecase/commands"
	"surplusfood-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
	),
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPackageUseCase,
		commands.NewUserUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPackageQueries,
		queries.NewOutletQueries,
		queries.NewUserQueries,
	),
)
