package infra_fx

import (
	"go.uber.org/fx"

	"smarttravel/internal/infra"
)

var Module = fx.Provide(provideCurrencyTable)

func provideCurrencyTable() (*infra.CurrencyTable, error) {
	return infra.LoadCurrencyTable()
}
