package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

type AttractionAgentInterface interface {
	Discover(ctx context.Context, destination string, categories []string, maxResults int) ([]domain_models.Attraction, error)
	TopAttractions(attractions []domain_models.Attraction, count int) []domain_models.Attraction
	ActivitiesCost(attractions []domain_models.Attraction) float64
	EstimateTimeNeeded(attractions []domain_models.Attraction) float64
	Status() domain_models.AgentStatus
}

type AttractionAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewAttractionAgent(logger *zap.Logger) AttractionAgentInterface {
	return &AttractionAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

// Discover returns the candidate set for a destination, filtered by category
// when a filter is supplied and truncated to maxResults. An empty category
// list means no restriction.
func (a *AttractionAgent) Discover(ctx context.Context, destination string, categories []string, maxResults int) ([]domain_models.Attraction, error) {
	a.logger.Info("discovering attractions",
		zap.String("destination", destination),
		zap.Strings("categories", categories))

	all := []domain_models.Attraction{
		{
			Name:          destination + " Museum of Art",
			Category:      "museum",
			Location:      "Cultural District, " + destination,
			Description:   "World-renowned art museum with extensive collections",
			Rating:        4.7,
			Price:         25.0,
			DurationHours: 3.0,
			OpenHours:     "09:00-18:00",
		},
		{
			Name:          destination + " Central Park",
			Category:      "park",
			Location:      "City Center, " + destination,
			Description:   "Beautiful urban park perfect for relaxation",
			Rating:        4.5,
			Price:         0.0,
			DurationHours: 2.0,
			OpenHours:     "09:00-18:00",
		},
		{
			Name:          "Historic " + destination + " Tower",
			Category:      "landmark",
			Location:      "Old Town, " + destination,
			Description:   "Iconic landmark with panoramic city views",
			Rating:        4.8,
			Price:         15.0,
			DurationHours: 1.5,
			OpenHours:     "09:00-18:00",
		},
		{
			Name:          destination + " Food Market",
			Category:      "food",
			Location:      "Market District, " + destination,
			Description:   "Vibrant food market with local specialties",
			Rating:        4.6,
			Price:         0.0,
			DurationHours: 2.0,
			OpenHours:     "09:00-18:00",
		},
		{
			Name:          destination + " Walking Tour",
			Category:      "tour",
			Location:      "Various locations, " + destination,
			Description:   "Guided walking tour through historic neighborhoods",
			Rating:        4.4,
			Price:         35.0,
			DurationHours: 3.0,
			OpenHours:     "09:00-18:00",
		},
	}

	if len(categories) > 0 {
		wanted := make(map[string]bool, len(categories))
		for _, c := range categories {
			wanted[c] = true
		}
		filtered := all[:0]
		for _, attraction := range all {
			if wanted[attraction.Category] {
				filtered = append(filtered, attraction)
			}
		}
		all = filtered
	}

	if maxResults > 0 && len(all) > maxResults {
		all = all[:maxResults]
	}

	return all, nil
}

// TopAttractions sorts by rating descending, stable on ties.
func (a *AttractionAgent) TopAttractions(attractions []domain_models.Attraction, count int) []domain_models.Attraction {
	sorted := make([]domain_models.Attraction, len(attractions))
	copy(sorted, attractions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if count < len(sorted) {
		sorted = sorted[:count]
	}
	return sorted
}

func (a *AttractionAgent) ActivitiesCost(attractions []domain_models.Attraction) float64 {
	var total float64
	for _, attraction := range attractions {
		total += attraction.Price
	}
	return total
}

func (a *AttractionAgent) EstimateTimeNeeded(attractions []domain_models.Attraction) float64 {
	var total float64
	for _, attraction := range attractions {
		total += attraction.DurationHours
	}
	return total
}

func (a *AttractionAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "AttractionAgent",
		Status:        "active",
		InitializedAt: a.initializedAt.Format(time.RFC3339),
	}
}
