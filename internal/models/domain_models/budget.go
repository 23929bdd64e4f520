package domain_models

import "time"

type BudgetTier string

const (
	TierBudget   BudgetTier = "budget"
	TierMidRange BudgetTier = "mid_range"
	TierLuxury   BudgetTier = "luxury"
)

// BudgetBreakdown is a recommended allocation of a total budget.
// Remaining is always total minus the sum of allocations; construct values
// through NewBudgetBreakdown so it can never drift.
type BudgetBreakdown struct {
	TotalBudget    float64 `json:"total_budget"`
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	EmergencyFund  float64 `json:"emergency_fund"`
	Remaining      float64 `json:"remaining"`
}

func NewBudgetBreakdown(total, accommodation, transportation, food, activities, emergency float64) BudgetBreakdown {
	allocated := accommodation + transportation + food + activities + emergency
	return BudgetBreakdown{
		TotalBudget:    total,
		Accommodation:  accommodation,
		Transportation: transportation,
		Food:           food,
		Activities:     activities,
		EmergencyFund:  emergency,
		Remaining:      total - allocated,
	}
}

// ValueCandidate is the neutral input shape the budget agent ranks,
// regardless of which category the candidate came from.
type ValueCandidate struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	Features []string `json:"features"`
}

type OptimizedOption struct {
	Category   string     `json:"category"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	ValueScore float64    `json:"value_score"`
	Savings    float64    `json:"savings"`
	Features   []string   `json:"features"`
	Tier       BudgetTier `json:"tier"`
}

type BudgetOptimizationResult struct {
	Breakdown        BudgetBreakdown   `json:"breakdown"`
	OptimizedOptions []OptimizedOption `json:"optimized_options"`
	MoneySavingTips  []string          `json:"money_saving_tips"`
	EstimatedTotal   float64           `json:"estimated_total"`
	PotentialSavings float64           `json:"potential_savings"`
	GeneratedAt      time.Time         `json:"generated_at"`
}
