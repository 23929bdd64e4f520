package hotel_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideHotelAgent)

func provideHotelAgent(logger *zap.Logger) services.HotelAgentInterface {
	return services.NewHotelAgent(logger)
}
