package response_models

import (
	"smarttravel/internal/models/domain_models"
)

type TripResponse struct {
	Destination        string                        `json:"destination"`
	DurationDays       int                           `json:"duration_days"`
	Flights            []domain_models.FlightOption  `json:"flights"`
	Accommodations     []domain_models.HotelOption   `json:"accommodations"`
	Attractions        []domain_models.Attraction    `json:"attractions"`
	DailySchedule      []domain_models.DayPlan       `json:"daily_schedule"`
	TotalEstimatedCost float64                       `json:"total_estimated_cost"`
	Message            string                        `json:"message"`
}

func BuildTripResponse(itinerary *domain_models.TravelItinerary) TripResponse {
	return TripResponse{
		Destination:        itinerary.Destination,
		DurationDays:       itinerary.DurationDays,
		Flights:            itinerary.Flights,
		Accommodations:     itinerary.Accommodations,
		Attractions:        itinerary.Attractions,
		DailySchedule:      itinerary.DailySchedule,
		TotalEstimatedCost: itinerary.TotalEstimatedCost,
		Message:            "Trip plan generated successfully",
	}
}
