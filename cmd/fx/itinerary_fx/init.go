package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideItineraryAgent)

func provideItineraryAgent(logger *zap.Logger) services.ItineraryAgentInterface {
	return services.NewItineraryAgent(logger)
}
