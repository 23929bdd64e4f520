package domain_models

// Restaurant price ranges use the "$".."$$$$" convention.
type Restaurant struct {
	Name                 string   `json:"name"`
	Cuisine              string   `json:"cuisine"`
	Location             string   `json:"location"`
	Description          string   `json:"description"`
	Rating               float64  `json:"rating"`
	PriceRange           string   `json:"price_range"`
	AverageCostPerPerson float64  `json:"average_cost_per_person"`
	DietaryOptions       []string `json:"dietary_options"`
	OpenHours            string   `json:"open_hours"`
	ReservationsRequired bool     `json:"reservations_required"`
	DistanceKM           float64  `json:"distance_km"`
}

// MealRecommendations maps a meal slot ("breakfast", "lunch", "dinner") to
// its picks for one day.
type MealRecommendations map[string][]Restaurant
