package restaurant_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideRestaurantAgent)

func provideRestaurantAgent(logger *zap.Logger) services.RestaurantAgentInterface {
	return services.NewRestaurantAgent(logger)
}
