package domain_models

import (
	"smarttravel/pkg/utils"
)

// TravelPreferences carries the typed request options. Empty fields mean
// "no restriction" for the corresponding filter.
type TravelPreferences struct {
	AttractionTypes     []string `json:"attraction_types,omitempty"`
	Cuisines            []string `json:"cuisines,omitempty"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	PriceRange          string   `json:"price_range,omitempty"`
}

// TravelRequest is the immutable input to the concierge. It is validated
// once, before any agent is invoked.
type TravelRequest struct {
	Destination string            `json:"destination"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Origin      string            `json:"origin,omitempty"`
	Budget      *float64          `json:"budget,omitempty"`
	Travelers   int               `json:"travelers"`
	Preferences TravelPreferences `json:"preferences"`
}

func (r TravelRequest) Validate() error {
	if r.Destination == "" {
		return utils.ErrEmptyDestination
	}
	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return err
	}
	end, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return utils.ErrInvalidDateRange
	}
	if r.Budget != nil && *r.Budget <= 0 {
		return utils.ErrInvalidBudget
	}
	if r.Travelers < 1 || r.Travelers > 20 {
		return utils.ErrInvalidTravelers
	}
	return nil
}
