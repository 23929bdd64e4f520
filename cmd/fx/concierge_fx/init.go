package concierge_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideConciergeService)

func provideConciergeService(
	flightAgent services.FlightAgentInterface,
	hotelAgent services.HotelAgentInterface,
	attractionAgent services.AttractionAgentInterface,
	itineraryAgent services.ItineraryAgentInterface,
	logger *zap.Logger,
) services.ConciergeServiceInterface {
	return services.NewConciergeService(flightAgent, hotelAgent, attractionAgent, itineraryAgent, logger)
}
