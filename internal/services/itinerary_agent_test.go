package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
	"smarttravel/pkg/utils"
)

func sampleAttractions(n int) []domain_models.Attraction {
	attractions := make([]domain_models.Attraction, n)
	for i := range attractions {
		attractions[i] = domain_models.Attraction{
			Name:   string(rune('A'+i)) + " Attraction",
			Rating: 4.0,
			Price:  10.0,
		}
	}
	return attractions
}

func TestCreateItineraryDayCount(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-03", sampleAttractions(6), domain_models.TravelPreferences{})
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 3)
	assert.Equal(t, "3-day trip to Paris", itinerary.Summary)
	assert.Equal(t, 1, itinerary.Days[0].DayNumber)
	assert.Equal(t, "2026-06-01", itinerary.Days[0].Date)
	assert.Equal(t, "2026-06-03", itinerary.Days[2].Date)
}

func TestCreateItineraryDayTemplate(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-03", sampleAttractions(6), domain_models.TravelPreferences{})
	require.NoError(t, err)

	for _, day := range itinerary.Days {
		require.NotEmpty(t, day.Activities)
		first := day.Activities[0]
		last := day.Activities[len(day.Activities)-1]
		assert.Equal(t, "09:00", first.Time)
		assert.Equal(t, "breakfast", first.Type)
		assert.Equal(t, "19:00", last.Time)
		assert.Equal(t, "dinner", last.Type)
	}

	// two attractions per day at 10:00 and 13:00
	day1 := itinerary.Days[0]
	require.Len(t, day1.Activities, 4)
	assert.Equal(t, "10:00", day1.Activities[1].Time)
	assert.Equal(t, "13:00", day1.Activities[2].Time)
	assert.Equal(t, "attraction", day1.Activities[1].Type)
}

func TestCreateItineraryNoAttractions(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-02", nil, domain_models.TravelPreferences{})
	require.NoError(t, err)

	for _, day := range itinerary.Days {
		require.Len(t, day.Activities, 3)
		assert.Equal(t, "exploration", day.Activities[1].Type)
		assert.Equal(t, "Explore Paris", day.Activities[1].Description)
	}
}

func TestCreateItineraryDropsTrailingAttractions(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	// 7 attractions over 3 days: 2 per day, the seventh never scheduled
	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-03", sampleAttractions(7), domain_models.TravelPreferences{})
	require.NoError(t, err)

	scheduled := 0
	for _, day := range itinerary.Days {
		for _, activity := range day.Activities {
			if activity.Type == "attraction" {
				scheduled++
			}
		}
	}
	assert.Equal(t, 6, scheduled)
}

func TestCreateItineraryBadDates(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	_, err := agent.CreateItinerary(context.Background(), "Paris",
		"not-a-date", "2026-06-03", nil, domain_models.TravelPreferences{})
	assert.Error(t, err)
}

func TestAddActivitySortsByTime(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-02", nil, domain_models.TravelPreferences{})
	require.NoError(t, err)

	err = agent.AddActivity(itinerary, 1, domain_models.Activity{
		Time: "12:00", Type: "lunch", Description: "Lunch break",
	})
	require.NoError(t, err)

	times := make([]string, 0, len(itinerary.Days[0].Activities))
	for _, activity := range itinerary.Days[0].Activities {
		times = append(times, activity.Time)
	}
	assert.Equal(t, []string{"09:00", "10:00", "12:00", "19:00"}, times)
}

func TestAddActivityDayOutOfRange(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-02", nil, domain_models.TravelPreferences{})
	require.NoError(t, err)

	err = agent.AddActivity(itinerary, 0, domain_models.Activity{Time: "12:00"})
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)

	err = agent.AddActivity(itinerary, 3, domain_models.Activity{Time: "12:00"})
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)
}

func TestDailySummary(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-02", nil, domain_models.TravelPreferences{})
	require.NoError(t, err)

	summary, err := agent.DailySummary(itinerary, 1)
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Breakfast at hotel → Explore Paris → Dinner at local restaurant", summary)

	_, err = agent.DailySummary(itinerary, 5)
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)
}

func TestOptimizeSchedulePassThrough(t *testing.T) {
	agent := NewItineraryAgent(zap.NewNop())

	itinerary, err := agent.CreateItinerary(context.Background(), "Paris",
		"2026-06-01", "2026-06-02", nil, domain_models.TravelPreferences{})
	require.NoError(t, err)

	assert.Same(t, itinerary, agent.OptimizeSchedule(itinerary))
}
