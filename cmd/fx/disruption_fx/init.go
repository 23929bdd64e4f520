package disruption_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideDisruptionAgent)

func provideDisruptionAgent(logger *zap.Logger) services.DisruptionAgentInterface {
	return services.NewDisruptionAgent(logger)
}
