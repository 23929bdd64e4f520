package services

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

// AllocationWeights maps a spending category to its share of the total
// budget. Shares should sum to at most 1.0.
type AllocationWeights struct {
	Accommodation  float64
	Transportation float64
	Food           float64
	Activities     float64
	Emergency      float64
}

// DefaultAllocation is the 35/25/20/15/5 split.
var DefaultAllocation = AllocationWeights{
	Accommodation:  0.35,
	Transportation: 0.25,
	Food:           0.20,
	Activities:     0.15,
	Emergency:      0.05,
}

type BudgetAgentInterface interface {
	Breakdown(totalBudget float64, durationDays int, weights *AllocationWeights) domain_models.BudgetBreakdown
	BestValueOptions(candidates []domain_models.ValueCandidate, budget float64, category string) []domain_models.OptimizedOption
	MoneySavingTips(destination string, durationDays int, tier domain_models.BudgetTier) []string
	TripCost(breakdown domain_models.BudgetBreakdown, selected map[string]float64) (totalCost, potentialSavings float64)
	OptimizeItinerary(totalBudget float64, durationDays int, destination string, available map[string][]domain_models.ValueCandidate) domain_models.BudgetOptimizationResult
	Status() domain_models.AgentStatus
}

type BudgetAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewBudgetAgent(logger *zap.Logger) BudgetAgentInterface {
	return &BudgetAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

func (b *BudgetAgent) Breakdown(totalBudget float64, durationDays int, weights *AllocationWeights) domain_models.BudgetBreakdown {
	b.logger.Info("optimizing budget",
		zap.Float64("total_budget", totalBudget),
		zap.Int("duration_days", durationDays))

	w := DefaultAllocation
	if weights != nil {
		w = *weights
	}

	return domain_models.NewBudgetBreakdown(
		totalBudget,
		totalBudget*w.Accommodation,
		totalBudget*w.Transportation,
		totalBudget*w.Food,
		totalBudget*w.Activities,
		totalBudget*w.Emergency,
	)
}

// BestValueOptions ranks candidates within a sub-budget by value score,
// (rating × (features+1)) / max(price, 1). Candidates priced above the
// budget are excluded outright.
func (b *BudgetAgent) BestValueOptions(candidates []domain_models.ValueCandidate, budget float64, category string) []domain_models.OptimizedOption {
	var avgPrice float64
	if len(candidates) > 0 {
		for _, cand := range candidates {
			avgPrice += cand.Price
		}
		avgPrice /= float64(len(candidates))
	} else {
		avgPrice = budget
	}

	optimized := make([]domain_models.OptimizedOption, 0, len(candidates))
	for _, cand := range candidates {
		if cand.Price > budget {
			continue
		}

		price := cand.Price
		if price <= 0 {
			price = 1
		}
		valueScore := (cand.Rating * float64(len(cand.Features)+1)) / price

		savings := avgPrice - cand.Price
		if savings < 0 {
			savings = 0
		}

		optimized = append(optimized, domain_models.OptimizedOption{
			Category:   category,
			Name:       cand.Name,
			Price:      cand.Price,
			ValueScore: valueScore,
			Savings:    savings,
			Features:   cand.Features,
			Tier:       tierForPrice(cand.Price, avgPrice),
		})
	}

	sort.SliceStable(optimized, func(i, j int) bool {
		return optimized[i].ValueScore > optimized[j].ValueScore
	})

	return optimized
}

func tierForPrice(price, avgPrice float64) domain_models.BudgetTier {
	switch {
	case price < avgPrice*0.7:
		return domain_models.TierBudget
	case price > avgPrice*1.3:
		return domain_models.TierLuxury
	default:
		return domain_models.TierMidRange
	}
}

func tierForDailyBudget(totalBudget float64, durationDays int) domain_models.BudgetTier {
	var daily float64
	if durationDays > 0 {
		daily = totalBudget / float64(durationDays)
	}
	switch {
	case daily < 100:
		return domain_models.TierBudget
	case daily > 300:
		return domain_models.TierLuxury
	default:
		return domain_models.TierMidRange
	}
}

func (b *BudgetAgent) MoneySavingTips(destination string, durationDays int, tier domain_models.BudgetTier) []string {
	tips := []string{
		"Book flights and accommodation in advance for better rates",
		"Travel during off-peak season for significant savings",
		"Use public transportation instead of taxis or rideshares",
	}

	switch tier {
	case domain_models.TierBudget:
		tips = append(tips,
			"Consider hostels or budget hotels for accommodation",
			"Cook some meals instead of dining out for every meal",
			"Look for free walking tours and attractions",
			"Buy groceries from local markets instead of tourist areas")
	case domain_models.TierMidRange:
		tips = append(tips,
			"Mix budget and mid-range accommodation for balance",
			"Have lunch at restaurants instead of dinner for lower prices",
			"Book combination tickets for multiple attractions",
			"Use hotel loyalty programs for perks and discounts")
	}

	if durationDays >= 7 {
		tips = append(tips,
			"Consider weekly rental rates for accommodation",
			"Buy a multi-day transit pass for unlimited travel")
	}

	return tips
}

func (b *BudgetAgent) TripCost(breakdown domain_models.BudgetBreakdown, selected map[string]float64) (float64, float64) {
	var totalCost float64
	for _, cost := range selected {
		totalCost += cost
	}
	return totalCost, breakdown.TotalBudget - totalCost
}

// OptimizeItinerary allocates the budget, then keeps the top three value
// picks per category.
func (b *BudgetAgent) OptimizeItinerary(totalBudget float64, durationDays int, destination string, available map[string][]domain_models.ValueCandidate) domain_models.BudgetOptimizationResult {
	b.logger.Info("creating optimized itinerary", zap.String("destination", destination))

	breakdown := b.Breakdown(totalBudget, durationDays, nil)

	categoryBudgets := []struct {
		name   string
		amount float64
	}{
		{"accommodation", breakdown.Accommodation},
		{"transportation", breakdown.Transportation},
		{"activities", breakdown.Activities},
	}

	var optimized []domain_models.OptimizedOption
	for _, cat := range categoryBudgets {
		candidates, ok := available[cat.name]
		if !ok {
			continue
		}
		best := b.BestValueOptions(candidates, cat.amount, cat.name)
		if len(best) > 3 {
			best = best[:3]
		}
		optimized = append(optimized, best...)
	}

	tier := tierForDailyBudget(totalBudget, durationDays)

	var estimatedTotal float64
	for _, opt := range optimized {
		estimatedTotal += opt.Price
	}

	return domain_models.BudgetOptimizationResult{
		Breakdown:        breakdown,
		OptimizedOptions: optimized,
		MoneySavingTips:  b.MoneySavingTips(destination, durationDays, tier),
		EstimatedTotal:   estimatedTotal,
		PotentialSavings: totalBudget - estimatedTotal,
		GeneratedAt:      time.Now(),
	}
}

func (b *BudgetAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "BudgetAgent",
		Status:        "active",
		InitializedAt: b.initializedAt.Format(time.RFC3339),
	}
}
