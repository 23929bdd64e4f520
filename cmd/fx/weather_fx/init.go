package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideWeatherAgent)

func provideWeatherAgent(logger *zap.Logger) services.WeatherAgentInterface {
	return services.NewWeatherAgent(logger)
}
