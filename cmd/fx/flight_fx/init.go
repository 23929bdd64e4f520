package flight_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideFlightAgent)

func provideFlightAgent(logger *zap.Logger) services.FlightAgentInterface {
	return services.NewFlightAgent(logger)
}
