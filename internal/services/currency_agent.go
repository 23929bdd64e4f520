package services

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/infra"
	"smarttravel/internal/models/domain_models"
	"smarttravel/pkg/utils"
)

type CurrencyAgentInterface interface {
	Convert(amount float64, fromCurrency, toCurrency string) domain_models.CurrencyConversion
	Rate(fromCurrency, toCurrency string) domain_models.ExchangeRate
	DestinationCurrency(destination string) (string, error)
	ConvertBudgetToDestination(budget float64, budgetCurrency, destination string) (*domain_models.CurrencyConversion, error)
	MultiCurrencyBreakdown(amount float64, baseCurrency string, targets []string) domain_models.MultiCurrencyBreakdown
	EstimateDailyCosts(destination string, tier domain_models.BudgetTier) domain_models.DailyCostEstimate
	CurrencyTips(destination string) []string
	Status() domain_models.AgentStatus
}

// CurrencyAgent converts between currencies through the table's base unit:
// rate(A→B) = rate(A→base) / rate(B→base). The table is immutable and
// injected at construction so tests can substitute fixtures.
type CurrencyAgent struct {
	table         *infra.CurrencyTable
	logger        *zap.Logger
	initializedAt time.Time
}

func NewCurrencyAgent(table *infra.CurrencyTable, logger *zap.Logger) CurrencyAgentInterface {
	return &CurrencyAgent{
		table:         table,
		logger:        logger,
		initializedAt: time.Now(),
	}
}

// rateToBase falls back to 1.0 for codes absent from the table. The caller
// gets an answer rather than a failure; the warning is the only signal that
// the result is an approximation.
func (c *CurrencyAgent) rateToBase(code string) float64 {
	rate, ok := c.table.Rates[code]
	if !ok {
		c.logger.Warn("unknown currency, treating as base rate", zap.String("currency", code))
		return 1.0
	}
	return rate
}

func (c *CurrencyAgent) Convert(amount float64, fromCurrency, toCurrency string) domain_models.CurrencyConversion {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	fromRate := c.rateToBase(from)
	toRate := c.rateToBase(to)

	amountInBase := amount * fromRate

	return domain_models.CurrencyConversion{
		OriginalAmount:    amount,
		OriginalCurrency:  from,
		ConvertedAmount:   amountInBase / toRate,
		ConvertedCurrency: to,
		ExchangeRate:      fromRate / toRate,
		ConversionDate:    time.Now(),
	}
}

func (c *CurrencyAgent) Rate(fromCurrency, toCurrency string) domain_models.ExchangeRate {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	return domain_models.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         c.rateToBase(from) / c.rateToBase(to),
		LastUpdated:  time.Now(),
	}
}

// DestinationCurrency resolves a destination to its local currency: exact
// match first, then case-insensitive substring match either way.
func (c *CurrencyAgent) DestinationCurrency(destination string) (string, error) {
	if currency, ok := c.table.Destinations[destination]; ok {
		return currency, nil
	}

	lower := strings.ToLower(destination)
	for location, currency := range c.table.Destinations {
		locLower := strings.ToLower(location)
		if strings.Contains(lower, locLower) || strings.Contains(locLower, lower) {
			return currency, nil
		}
	}

	return "", utils.ErrUnknownCurrency
}

func (c *CurrencyAgent) ConvertBudgetToDestination(budget float64, budgetCurrency, destination string) (*domain_models.CurrencyConversion, error) {
	destCurrency, err := c.DestinationCurrency(destination)
	if err != nil {
		c.logger.Warn("could not determine destination currency", zap.String("destination", destination))
		return nil, err
	}

	conversion := c.Convert(budget, budgetCurrency, destCurrency)
	return &conversion, nil
}

func (c *CurrencyAgent) MultiCurrencyBreakdown(amount float64, baseCurrency string, targets []string) domain_models.MultiCurrencyBreakdown {
	base := strings.ToUpper(baseCurrency)
	breakdown := domain_models.MultiCurrencyBreakdown{
		BaseAmount:    amount,
		BaseCurrency:  base,
		Conversions:   map[string]float64{},
		ExchangeRates: map[string]float64{},
	}

	for _, target := range targets {
		upper := strings.ToUpper(target)
		if upper == base {
			continue
		}
		conversion := c.Convert(amount, base, upper)
		breakdown.AddConversion(upper, conversion.ConvertedAmount, conversion.ExchangeRate)
	}

	return breakdown
}

// dailyCostsUSD are baseline per-day estimates by tier, converted to the
// destination's currency on demand.
var dailyCostsUSD = map[domain_models.BudgetTier]map[string]float64{
	domain_models.TierBudget: {
		"accommodation": 30, "food": 20, "transportation": 10, "activities": 15, "total": 75,
	},
	domain_models.TierMidRange: {
		"accommodation": 80, "food": 50, "transportation": 25, "activities": 45, "total": 200,
	},
	domain_models.TierLuxury: {
		"accommodation": 200, "food": 100, "transportation": 50, "activities": 100, "total": 450,
	},
}

func (c *CurrencyAgent) EstimateDailyCosts(destination string, tier domain_models.BudgetTier) domain_models.DailyCostEstimate {
	destCurrency, err := c.DestinationCurrency(destination)
	if err != nil {
		destCurrency = "USD"
	}

	base, ok := dailyCostsUSD[tier]
	if !ok {
		tier = domain_models.TierMidRange
		base = dailyCostsUSD[tier]
	}

	costs := make(map[string]domain_models.CostInCurrency, len(base))
	for category, usd := range base {
		conversion := c.Convert(usd, "USD", destCurrency)
		costs[category] = domain_models.CostInCurrency{
			Amount:   math.Round(conversion.ConvertedAmount*100) / 100,
			Currency: destCurrency,
		}
	}

	return domain_models.DailyCostEstimate{
		Destination: destination,
		BudgetTier:  string(tier),
		DailyCosts:  costs,
		Currency:    destCurrency,
	}
}

func (c *CurrencyAgent) CurrencyTips(destination string) []string {
	tips := []string{
		"Notify your bank before traveling internationally",
		"Use credit cards with no foreign transaction fees",
		"Avoid airport currency exchanges (poor rates)",
		"Use ATMs for better exchange rates than currency counters",
		"Keep some cash for small vendors who don't accept cards",
	}

	if currency, err := c.DestinationCurrency(destination); err == nil {
		tips = append([]string{"The local currency in " + destination + " is " + currency}, tips...)
	}

	return tips
}

func (c *CurrencyAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "CurrencyAgent",
		Status:        "active",
		InitializedAt: c.initializedAt.Format(time.RFC3339),
	}
}
