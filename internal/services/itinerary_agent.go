package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
	"smarttravel/pkg/utils"
)

type ItineraryAgentInterface interface {
	CreateItinerary(ctx context.Context, destination, startDate, endDate string, attractions []domain_models.Attraction, prefs domain_models.TravelPreferences) (*domain_models.Itinerary, error)
	AddActivity(itinerary *domain_models.Itinerary, dayNumber int, activity domain_models.Activity) error
	DailySummary(itinerary *domain_models.Itinerary, dayNumber int) (string, error)
	OptimizeSchedule(itinerary *domain_models.Itinerary) *domain_models.Itinerary
	Status() domain_models.AgentStatus
}

type ItineraryAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewItineraryAgent(logger *zap.Logger) ItineraryAgentInterface {
	return &ItineraryAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

// CreateItinerary partitions attractions across the trip's days and fills
// each day with the fixed template: breakfast at 09:00, attractions from
// 10:00 three hours apart, dinner at 19:00. Days whose attraction slice is
// empty get a single generic exploration slot instead. Attractions beyond
// days × attractionsPerDay are dropped.
func (i *ItineraryAgent) CreateItinerary(ctx context.Context, destination, startDate, endDate string, attractions []domain_models.Attraction, prefs domain_models.TravelPreferences) (*domain_models.Itinerary, error) {
	i.logger.Info("creating itinerary", zap.String("destination", destination))

	numDays, err := utils.DurationDays(startDate, endDate)
	if err != nil {
		return nil, err
	}

	attractionsPerDay := 2
	if len(attractions) > 0 {
		attractionsPerDay = len(attractions) / numDays
		if attractionsPerDay < 1 {
			attractionsPerDay = 1
		}
	}

	days := make([]domain_models.DayPlan, 0, numDays)
	for d := 0; d < numDays; d++ {
		date, err := utils.AddDays(startDate, d)
		if err != nil {
			return nil, err
		}

		var dayAttractions []domain_models.Attraction
		if len(attractions) > 0 {
			startIdx := d * attractionsPerDay
			endIdx := startIdx + attractionsPerDay
			if startIdx > len(attractions) {
				startIdx = len(attractions)
			}
			if endIdx > len(attractions) {
				endIdx = len(attractions)
			}
			dayAttractions = attractions[startIdx:endIdx]
		}

		activities := []domain_models.Activity{
			{Time: "09:00", Type: "breakfast", Description: "Breakfast at hotel"},
		}

		hour := 10
		for _, attraction := range dayAttractions {
			activities = append(activities, domain_models.Activity{
				Time:        fmt.Sprintf("%02d:00", hour),
				Type:        "attraction",
				Description: "Visit " + attraction.Name,
			})
			hour += 3
		}

		if len(dayAttractions) == 0 {
			activities = append(activities, domain_models.Activity{
				Time:        "10:00",
				Type:        "exploration",
				Description: "Explore " + destination,
			})
		}

		activities = append(activities, domain_models.Activity{
			Time: "19:00", Type: "dinner", Description: "Dinner at local restaurant",
		})

		days = append(days, domain_models.DayPlan{
			DayNumber:  d + 1,
			Date:       date,
			Activities: activities,
			Notes:      fmt.Sprintf("Day %d in %s", d+1, destination),
		})
	}

	return &domain_models.Itinerary{
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        days,
		Summary:     fmt.Sprintf("%d-day trip to %s", numDays, destination),
	}, nil
}

// AddActivity inserts into the 1-indexed day and re-sorts that day's
// activities by time, stably.
func (i *ItineraryAgent) AddActivity(itinerary *domain_models.Itinerary, dayNumber int, activity domain_models.Activity) error {
	if dayNumber < 1 || dayNumber > len(itinerary.Days) {
		return utils.ErrDayOutOfRange
	}

	day := &itinerary.Days[dayNumber-1]
	day.Activities = append(day.Activities, activity)
	sort.SliceStable(day.Activities, func(a, b int) bool {
		return day.Activities[a].Time < day.Activities[b].Time
	})
	return nil
}

func (i *ItineraryAgent) DailySummary(itinerary *domain_models.Itinerary, dayNumber int) (string, error) {
	if dayNumber < 1 || dayNumber > len(itinerary.Days) {
		return "", utils.ErrDayOutOfRange
	}

	day := itinerary.Days[dayNumber-1]
	descriptions := make([]string, 0, len(day.Activities))
	for _, activity := range day.Activities {
		descriptions = append(descriptions, activity.Description)
	}
	return fmt.Sprintf("Day %d: %s", dayNumber, strings.Join(descriptions, " → ")), nil
}

// OptimizeSchedule is a pass-through for now; a real optimizer would slot in
// here without changing the orchestration contract.
func (i *ItineraryAgent) OptimizeSchedule(itinerary *domain_models.Itinerary) *domain_models.Itinerary {
	i.logger.Info("optimizing itinerary schedule")
	return itinerary
}

func (i *ItineraryAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "ItineraryAgent",
		Status:        "active",
		InitializedAt: i.initializedAt.Format(time.RFC3339),
	}
}
