package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

type FlightAgentInterface interface {
	SearchFlights(ctx context.Context, origin, destination, departureDate, returnDate string, passengers int) ([]domain_models.FlightOption, error)
	BestFlight(flights []domain_models.FlightOption, preference string) *domain_models.FlightOption
	Status() domain_models.AgentStatus
}

type FlightAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewFlightAgent(logger *zap.Logger) FlightAgentInterface {
	return &FlightAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

// SearchFlights returns the deterministic candidate set for a route. Prices
// scale with passenger count.
func (f *FlightAgent) SearchFlights(ctx context.Context, origin, destination, departureDate, returnDate string, passengers int) ([]domain_models.FlightOption, error) {
	f.logger.Info("searching flights",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("departure_date", departureDate))

	flights := []domain_models.FlightOption{
		{
			Airline:       "Mock Airlines",
			DepartureCity: origin,
			ArrivalCity:   destination,
			DepartureTime: departureDate + "T08:00:00",
			ArrivalTime:   departureDate + "T12:00:00",
			Price:         350.0 * float64(passengers),
			DurationHours: 4.0,
			Stops:         0,
		},
		{
			Airline:       "Budget Air",
			DepartureCity: origin,
			ArrivalCity:   destination,
			DepartureTime: departureDate + "T14:00:00",
			ArrivalTime:   departureDate + "T20:00:00",
			Price:         200.0 * float64(passengers),
			DurationHours: 6.0,
			Stops:         1,
		},
	}

	return flights, nil
}

// BestFlight picks the minimum by the requested key. Ties keep the earliest
// candidate; an empty list yields nil rather than an error. An unknown
// preference falls back to the first candidate.
func (f *FlightAgent) BestFlight(flights []domain_models.FlightOption, preference string) *domain_models.FlightOption {
	if len(flights) == 0 {
		return nil
	}

	best := flights[0]
	switch preference {
	case "price":
		for _, fl := range flights[1:] {
			if fl.Price < best.Price {
				best = fl
			}
		}
	case "duration":
		for _, fl := range flights[1:] {
			if fl.DurationHours < best.DurationHours {
				best = fl
			}
		}
	case "stops":
		for _, fl := range flights[1:] {
			if fl.Stops < best.Stops {
				best = fl
			}
		}
	}

	return &best
}

func (f *FlightAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "FlightAgent",
		Status:        "active",
		InitializedAt: f.initializedAt.Format(time.RFC3339),
	}
}
