package request_models

import (
	"smarttravel/internal/models/domain_models"
)

// PlanTripRequest is the HTTP payload for trip planning. Structural checks
// live in the binding tags; date semantics are validated once by the domain
// request before any agent runs.
type PlanTripRequest struct {
	Destination string             `json:"destination" binding:"required"`
	StartDate   string             `json:"start_date" binding:"required"`
	EndDate     string             `json:"end_date" binding:"required"`
	Origin      string             `json:"origin"`
	Budget      *float64           `json:"budget" binding:"omitempty,gt=0"`
	Travelers   int                `json:"travelers" binding:"omitempty,gte=1,lte=20"`
	Preferences PreferencesPayload `json:"preferences"`
}

type PreferencesPayload struct {
	AttractionTypes     []string `json:"attraction_types"`
	Cuisines            []string `json:"cuisines"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	PriceRange          string   `json:"price_range"`
}

func (r PlanTripRequest) ToTravelRequest() domain_models.TravelRequest {
	travelers := r.Travelers
	if travelers == 0 {
		travelers = 1
	}
	return domain_models.TravelRequest{
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Origin:      r.Origin,
		Budget:      r.Budget,
		Travelers:   travelers,
		Preferences: domain_models.TravelPreferences{
			AttractionTypes:     r.Preferences.AttractionTypes,
			Cuisines:            r.Preferences.Cuisines,
			DietaryRestrictions: r.Preferences.DietaryRestrictions,
			PriceRange:          r.Preferences.PriceRange,
		},
	}
}
