package request_models

import (
	"smarttravel/internal/models/domain_models"
)

type DetectDisruptionsRequest struct {
	Itinerary   domain_models.TravelItinerary `json:"itinerary" binding:"required"`
	LiveSignals domain_models.LiveSignals     `json:"live_signals"`
}

type ReviseItineraryRequest struct {
	Itinerary domain_models.TravelItinerary  `json:"itinerary" binding:"required"`
	Report    domain_models.DisruptionReport `json:"report" binding:"required"`
}
