package attraction_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideAttractionAgent)

func provideAttractionAgent(logger *zap.Logger) services.AttractionAgentInterface {
	return services.NewAttractionAgent(logger)
}
