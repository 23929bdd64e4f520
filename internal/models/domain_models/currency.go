package domain_models

import "time"

type ExchangeRate struct {
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Convert applies this exchange rate to an amount.
func (r ExchangeRate) Convert(amount float64) float64 {
	return amount * r.Rate
}

type CurrencyConversion struct {
	OriginalAmount    float64   `json:"original_amount"`
	OriginalCurrency  string    `json:"original_currency"`
	ConvertedAmount   float64   `json:"converted_amount"`
	ConvertedCurrency string    `json:"converted_currency"`
	ExchangeRate      float64   `json:"exchange_rate"`
	ConversionDate    time.Time `json:"conversion_date"`
}

// MultiCurrencyBreakdown expresses one amount in several currencies.
type MultiCurrencyBreakdown struct {
	BaseAmount    float64            `json:"base_amount"`
	BaseCurrency  string             `json:"base_currency"`
	Conversions   map[string]float64 `json:"conversions"`
	ExchangeRates map[string]float64 `json:"exchange_rates"`
}

func (b *MultiCurrencyBreakdown) AddConversion(currency string, amount, rate float64) {
	b.Conversions[currency] = amount
	b.ExchangeRates[currency] = rate
}

type CostInCurrency struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type DailyCostEstimate struct {
	Destination string                    `json:"destination"`
	BudgetTier  string                    `json:"budget_tier"`
	DailyCosts  map[string]CostInCurrency `json:"daily_costs"`
	Currency    string                    `json:"currency"`
}
