package currency_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/infra"
	"smarttravel/internal/services"
)

var Module = fx.Provide(provideCurrencyAgent)

func provideCurrencyAgent(table *infra.CurrencyTable, logger *zap.Logger) services.CurrencyAgentInterface {
	return services.NewCurrencyAgent(table, logger)
}
