package components

import (
	"roomhub/internal/handler"
	"roomhub/internal/handler/api"
	"roomhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewPresenceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
