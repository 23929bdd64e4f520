package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

// RestaurantFilter narrows a restaurant search. Zero-valued fields mean
// no restriction.
type RestaurantFilter struct {
	Cuisines            []string
	DietaryRestrictions []string
	PriceRange          string
	MaxResults          int
}

type RestaurantAgentInterface interface {
	Discover(ctx context.Context, destination string, filter RestaurantFilter) ([]domain_models.Restaurant, error)
	TopRestaurants(restaurants []domain_models.Restaurant, count int) []domain_models.Restaurant
	BudgetFriendly(restaurants []domain_models.Restaurant, maxBudgetPerPerson float64) []domain_models.Restaurant
	Nearby(restaurants []domain_models.Restaurant, maxDistanceKM float64) []domain_models.Restaurant
	DiningCost(restaurants []domain_models.Restaurant, people int) float64
	RecommendationsByMealType(ctx context.Context, destination, mealType string, filter RestaurantFilter) ([]domain_models.Restaurant, error)
	DiningItinerary(ctx context.Context, destination string, numDays int, filter RestaurantFilter) (map[string]domain_models.MealRecommendations, error)
	Status() domain_models.AgentStatus
}

type RestaurantAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewRestaurantAgent(logger *zap.Logger) RestaurantAgentInterface {
	return &RestaurantAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

func (r *RestaurantAgent) Discover(ctx context.Context, destination string, filter RestaurantFilter) ([]domain_models.Restaurant, error) {
	r.logger.Info("discovering restaurants", zap.String("destination", destination))

	all := []domain_models.Restaurant{
		{
			Name:                 "La Bella " + destination,
			Cuisine:              "italian",
			Location:             "Downtown, " + destination,
			Description:          "Authentic Italian cuisine with fresh pasta and wood-fired pizzas",
			Rating:               4.6,
			PriceRange:           "$$",
			AverageCostPerPerson: 35.0,
			DietaryOptions:       []string{"vegetarian", "gluten-free"},
			OpenHours:            "11:00-22:00",
			ReservationsRequired: true,
			DistanceKM:           1.2,
		},
		{
			Name:                 destination + " Sushi Bar",
			Cuisine:              "japanese",
			Location:             "Financial District, " + destination,
			Description:          "Modern Japanese restaurant with sushi bar and omakase menu",
			Rating:               4.8,
			PriceRange:           "$$$",
			AverageCostPerPerson: 65.0,
			DietaryOptions:       []string{"gluten-free"},
			OpenHours:            "11:00-22:00",
			ReservationsRequired: true,
			DistanceKM:           0.8,
		},
		{
			Name:                 "Spice of " + destination,
			Cuisine:              "indian",
			Location:             "Cultural Quarter, " + destination,
			Description:          "Traditional Indian restaurant with regional specialties",
			Rating:               4.5,
			PriceRange:           "$$",
			AverageCostPerPerson: 30.0,
			DietaryOptions:       []string{"vegetarian", "vegan", "gluten-free"},
			OpenHours:            "11:00-22:00",
			DistanceKM:           2.1,
		},
		{
			Name:                 "Green Garden Bistro",
			Cuisine:              "vegetarian",
			Location:             "Arts District, " + destination,
			Description:          "Plant-based restaurant with creative vegetarian dishes",
			Rating:               4.7,
			PriceRange:           "$$",
			AverageCostPerPerson: 28.0,
			DietaryOptions:       []string{"vegetarian", "vegan", "gluten-free"},
			OpenHours:            "11:00-22:00",
			DistanceKM:           1.5,
		},
		{
			Name:                 destination + " Street Food Market",
			Cuisine:              "international",
			Location:             "Market Square, " + destination,
			Description:          "Vibrant food market with diverse international cuisines",
			Rating:               4.4,
			PriceRange:           "$",
			AverageCostPerPerson: 15.0,
			DietaryOptions:       []string{"vegetarian", "vegan", "halal"},
			OpenHours:            "11:00-22:00",
			DistanceKM:           0.5,
		},
		{
			Name:                 "Le Gourmet " + destination,
			Cuisine:              "french",
			Location:             "Historic Center, " + destination,
			Description:          "Fine dining French restaurant with Michelin-star experience",
			Rating:               4.9,
			PriceRange:           "$$$$",
			AverageCostPerPerson: 120.0,
			DietaryOptions:       []string{"vegetarian"},
			OpenHours:            "11:00-22:00",
			ReservationsRequired: true,
			DistanceKM:           1.8,
		},
		{
			Name:                 "Taco Fiesta",
			Cuisine:              "mexican",
			Location:             "Beach District, " + destination,
			Description:          "Casual Mexican eatery with authentic tacos and margaritas",
			Rating:               4.3,
			PriceRange:           "$",
			AverageCostPerPerson: 20.0,
			DietaryOptions:       []string{"vegetarian", "vegan", "gluten-free"},
			OpenHours:            "11:00-22:00",
			DistanceKM:           3.2,
		},
		{
			Name:                 destination + " BBQ House",
			Cuisine:              "american",
			Location:             "Riverside, " + destination,
			Description:          "American steakhouse with premium cuts and craft cocktails",
			Rating:               4.5,
			PriceRange:           "$$$",
			AverageCostPerPerson: 70.0,
			DietaryOptions:       []string{"gluten-free"},
			OpenHours:            "11:00-22:00",
			ReservationsRequired: true,
			DistanceKM:           2.5,
		},
	}

	if len(filter.Cuisines) > 0 {
		wanted := make(map[string]bool, len(filter.Cuisines))
		for _, c := range filter.Cuisines {
			wanted[c] = true
		}
		filtered := all[:0]
		for _, rest := range all {
			if wanted[rest.Cuisine] {
				filtered = append(filtered, rest)
			}
		}
		all = filtered
	}

	if len(filter.DietaryRestrictions) > 0 {
		filtered := all[:0]
		for _, rest := range all {
			if hasAnyDietaryOption(rest, filter.DietaryRestrictions) {
				filtered = append(filtered, rest)
			}
		}
		all = filtered
	}

	if filter.PriceRange != "" {
		filtered := all[:0]
		for _, rest := range all {
			if rest.PriceRange == filter.PriceRange {
				filtered = append(filtered, rest)
			}
		}
		all = filtered
	}

	maxResults := filter.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	if len(all) > maxResults {
		all = all[:maxResults]
	}

	return all, nil
}

func hasAnyDietaryOption(rest domain_models.Restaurant, restrictions []string) bool {
	for _, restriction := range restrictions {
		for _, option := range rest.DietaryOptions {
			if option == restriction {
				return true
			}
		}
	}
	return false
}

func (r *RestaurantAgent) TopRestaurants(restaurants []domain_models.Restaurant, count int) []domain_models.Restaurant {
	sorted := make([]domain_models.Restaurant, len(restaurants))
	copy(sorted, restaurants)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}

func (r *RestaurantAgent) BudgetFriendly(restaurants []domain_models.Restaurant, maxBudgetPerPerson float64) []domain_models.Restaurant {
	out := make([]domain_models.Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		if rest.AverageCostPerPerson <= maxBudgetPerPerson {
			out = append(out, rest)
		}
	}
	return out
}

func (r *RestaurantAgent) Nearby(restaurants []domain_models.Restaurant, maxDistanceKM float64) []domain_models.Restaurant {
	out := make([]domain_models.Restaurant, 0, len(restaurants))
	for _, rest := range restaurants {
		if rest.DistanceKM <= maxDistanceKM {
			out = append(out, rest)
		}
	}
	return out
}

func (r *RestaurantAgent) DiningCost(restaurants []domain_models.Restaurant, people int) float64 {
	var total float64
	for _, rest := range restaurants {
		total += rest.AverageCostPerPerson * float64(people)
	}
	return total
}

// RecommendationsByMealType returns the top three picks for one meal slot.
// Breakfast defaults to american and french cuisine unless the filter
// already names cuisines.
func (r *RestaurantAgent) RecommendationsByMealType(ctx context.Context, destination, mealType string, filter RestaurantFilter) ([]domain_models.Restaurant, error) {
	if mealType == "breakfast" && len(filter.Cuisines) == 0 {
		filter.Cuisines = []string{"american", "french"}
	}

	restaurants, err := r.Discover(ctx, destination, filter)
	if err != nil {
		return nil, err
	}
	return r.TopRestaurants(restaurants, 3), nil
}

// DiningItinerary picks one restaurant per meal slot per day.
func (r *RestaurantAgent) DiningItinerary(ctx context.Context, destination string, numDays int, filter RestaurantFilter) (map[string]domain_models.MealRecommendations, error) {
	itinerary := make(map[string]domain_models.MealRecommendations, numDays)
	mealTypes := []string{"breakfast", "lunch", "dinner"}

	for day := 1; day <= numDays; day++ {
		dayKey := fmt.Sprintf("Day %d", day)
		meals := make(domain_models.MealRecommendations, len(mealTypes))
		for _, mealType := range mealTypes {
			recommendations, err := r.RecommendationsByMealType(ctx, destination, mealType, filter)
			if err != nil {
				return nil, err
			}
			if len(recommendations) > 1 {
				recommendations = recommendations[:1]
			}
			meals[mealType] = recommendations
		}
		itinerary[dayKey] = meals
	}

	return itinerary, nil
}

func (r *RestaurantAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "RestaurantAgent",
		Status:        "active",
		InitializedAt: r.initializedAt.Format(time.RFC3339),
	}
}
