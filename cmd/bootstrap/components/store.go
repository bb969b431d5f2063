package components

import (
	"roomhub/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("stores",
	fx.Provide(
		usecase.NewListingStore,
		usecase.NewBookingStore,
		usecase.NewCatalogStore,
		usecase.NewVisitStore,
	),
)
