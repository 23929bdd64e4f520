package budget_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"smarttravel/internal/services"
)

var Module = fx.Provide(provideBudgetAgent)

func provideBudgetAgent(logger *zap.Logger) services.BudgetAgentInterface {
	return services.NewBudgetAgent(logger)
}
