package components

import (
	"context"

	"roomhub/internal/pkg/clock"
	"roomhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewCatalogProjector,
		usecase.NewListingUseCase,
		usecase.NewBookingUseCase,
		usecase.NewPresenceTracker,
		func(t *usecase.PresenceTracker) usecase.PresenceUseCase { return t },
	),
	fx.Invoke(registerPresenceLifecycle),
)

func registerPresenceLifecycle(lc fx.Lifecycle, tracker *usecase.PresenceTracker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			tracker.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			tracker.Stop()
			return nil
		},
	})
}
