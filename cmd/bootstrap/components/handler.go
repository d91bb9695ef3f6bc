package components

import (
	"surplusfood-api/internal/handler"
	"surplusfood-api/internal/handler/api"
	"surplusfood-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPackageHandler,
		api.NewOutletHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
