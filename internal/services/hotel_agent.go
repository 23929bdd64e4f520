package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

type HotelAgentInterface interface {
	SearchHotels(ctx context.Context, destination, checkIn, checkOut string, guests, rooms int) ([]domain_models.HotelOption, error)
	BestHotel(hotels []domain_models.HotelOption, preference string) *domain_models.HotelOption
	TotalCost(hotel domain_models.HotelOption, nights, rooms int) float64
	Status() domain_models.AgentStatus
}

type HotelAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewHotelAgent(logger *zap.Logger) HotelAgentInterface {
	return &HotelAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

func (h *HotelAgent) SearchHotels(ctx context.Context, destination, checkIn, checkOut string, guests, rooms int) ([]domain_models.HotelOption, error) {
	h.logger.Info("searching hotels",
		zap.String("destination", destination),
		zap.String("check_in", checkIn),
		zap.String("check_out", checkOut))

	hotels := []domain_models.HotelOption{
		{
			Name:          "Grand Hotel",
			Location:      "Downtown " + destination,
			StarRating:    5,
			PricePerNight: 250.0,
			Amenities:     []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym"},
			GuestRating:   4.8,
			RoomType:      "Deluxe",
		},
		{
			Name:          "City Inn",
			Location:      "Central " + destination,
			StarRating:    3,
			PricePerNight: 95.0,
			Amenities:     []string{"WiFi", "Breakfast", "Parking"},
			GuestRating:   4.2,
			RoomType:      "Standard",
		},
		{
			Name:          "Budget Stay",
			Location:      destination + " Suburbs",
			StarRating:    2,
			PricePerNight: 55.0,
			Amenities:     []string{"WiFi", "Parking"},
			GuestRating:   3.8,
			RoomType:      "Basic",
		},
	}

	return hotels, nil
}

// BestHotel picks min price, max guest rating or max stars. Ties keep the
// earliest candidate; empty input yields nil.
func (h *HotelAgent) BestHotel(hotels []domain_models.HotelOption, preference string) *domain_models.HotelOption {
	if len(hotels) == 0 {
		return nil
	}

	best := hotels[0]
	switch preference {
	case "price":
		for _, ho := range hotels[1:] {
			if ho.PricePerNight < best.PricePerNight {
				best = ho
			}
		}
	case "rating":
		for _, ho := range hotels[1:] {
			if ho.GuestRating > best.GuestRating {
				best = ho
			}
		}
	case "stars":
		for _, ho := range hotels[1:] {
			if ho.StarRating > best.StarRating {
				best = ho
			}
		}
	}

	return &best
}

func (h *HotelAgent) TotalCost(hotel domain_models.HotelOption, nights, rooms int) float64 {
	return hotel.PricePerNight * float64(nights) * float64(rooms)
}

func (h *HotelAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "HotelAgent",
		Status:        "active",
		InitializedAt: h.initializedAt.Format(time.RFC3339),
	}
}
