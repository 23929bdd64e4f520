package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

func sampleTravelItinerary() domain_models.TravelItinerary {
	return domain_models.TravelItinerary{
		Destination:  "Paris",
		DurationDays: 2,
		DailySchedule: []domain_models.DayPlan{
			{
				DayNumber: 1,
				Date:      "2026-06-01",
				Activities: []domain_models.Activity{
					{Time: "09:00", Type: "breakfast", Description: "Breakfast at hotel"},
					{Time: "10:00", Type: "attraction", Description: "Visit Paris Museum of Art"},
					{Time: "19:00", Type: "dinner", Description: "Dinner at local restaurant"},
				},
			},
			{
				DayNumber: 2,
				Date:      "2026-06-02",
				Activities: []domain_models.Activity{
					{Time: "09:00", Type: "breakfast", Description: "Breakfast at hotel"},
					{Time: "10:00", Type: "exploration", Description: "Explore Paris"},
					{Time: "19:00", Type: "dinner", Description: "Dinner at local restaurant"},
				},
			},
		},
	}
}

func TestDetectDisruptionsNoSignals(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())

	report := agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{})
	assert.NotEmpty(t, report.ID)
	assert.Empty(t, report.Disruptions)
	assert.Equal(t, 0.0, report.RiskScore)
	assert.False(t, report.RequiresReplanning)
}

func TestDetectDisruptionsFlightCancelled(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())

	report := agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		FlightCancelled: true,
	})
	require.Len(t, report.Disruptions, 1)
	assert.Equal(t, domain_models.DisruptionFlightCancelled, report.Disruptions[0].Type)
	assert.Equal(t, domain_models.SeverityHigh, report.Disruptions[0].Severity)
	assert.Equal(t, "2026-06-01", report.Disruptions[0].AffectedDate)
	assert.Equal(t, 60.0, report.RiskScore)
	assert.True(t, report.RequiresReplanning)
	assert.Contains(t, report.Recommendations, "Contact airline immediately for rebooking options")
}

func TestDetectDisruptionsDelayThreshold(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())

	report := agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		FlightDelayedHours: 3,
	})
	assert.Empty(t, report.Disruptions)

	report = agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		FlightDelayedHours: 4,
	})
	require.Len(t, report.Disruptions, 1)
	assert.Equal(t, domain_models.DisruptionFlightDelayed, report.Disruptions[0].Type)
	assert.Equal(t, domain_models.SeverityMedium, report.Disruptions[0].Severity)
	assert.Equal(t, 30.0, report.RiskScore)
	assert.False(t, report.RequiresReplanning)
}

func TestDetectDisruptionsSevereWeather(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())

	report := agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		SevereWeather: &domain_models.SevereWeatherSignal{Date: "2026-06-02"},
	})
	require.Len(t, report.Disruptions, 1)
	assert.Equal(t, "Severe weather expected", report.Disruptions[0].Description)
	assert.Equal(t, "2026-06-02", report.Disruptions[0].AffectedDate)
	assert.Contains(t, report.Recommendations, "Have backup indoor activities planned")
}

func TestRiskScoreAccumulatesAndSaturates(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())

	report := agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		FlightCancelled:    true,
		FlightDelayedHours: 5,
	})
	require.Len(t, report.Disruptions, 2)
	assert.Equal(t, 90.0, report.RiskScore)

	report = agent.DetectDisruptions(context.Background(), sampleTravelItinerary(), domain_models.LiveSignals{
		FlightCancelled:    true,
		FlightDelayedHours: 5,
		SevereWeather:      &domain_models.SevereWeatherSignal{Date: "2026-06-02"},
	})
	require.Len(t, report.Disruptions, 3)
	assert.Equal(t, 100.0, report.RiskScore)
}

func TestRevisedItineraryFlightCancelled(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())
	itinerary := sampleTravelItinerary()

	report := agent.DetectDisruptions(context.Background(), itinerary, domain_models.LiveSignals{
		FlightCancelled: true,
	})
	revised := agent.GenerateRevisedItinerary(context.Background(), itinerary, report)

	require.Len(t, revised.NewFlights, 1)
	assert.Equal(t, "Alternative Airways", revised.NewFlights[0].Airline)
	assert.Equal(t, 450.0, revised.NewFlights[0].Price)
	assert.Equal(t, 200.0, revised.EstimatedAdditionalCost)
	require.Len(t, revised.Changes, 1)
	assert.Equal(t, "flight_replacement", revised.Changes[0].Type)
	assert.Equal(t, "Flight rebooked to next available departure", revised.RevisionNotes)
}

func TestRevisedItineraryFlightDelayed(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())
	itinerary := sampleTravelItinerary()

	report := agent.DetectDisruptions(context.Background(), itinerary, domain_models.LiveSignals{
		FlightDelayedHours: 5,
	})
	revised := agent.GenerateRevisedItinerary(context.Background(), itinerary, report)

	require.Len(t, revised.NewDailySchedule, 2)
	assert.Len(t, revised.NewDailySchedule[0].Activities, 2)
	assert.Equal(t, "attraction", revised.NewDailySchedule[0].Activities[0].Type)
	// the original day plans are untouched
	assert.Len(t, itinerary.DailySchedule[0].Activities, 3)
}

func TestRevisedItinerarySevereWeather(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())
	itinerary := sampleTravelItinerary()

	report := agent.DetectDisruptions(context.Background(), itinerary, domain_models.LiveSignals{
		SevereWeather: &domain_models.SevereWeatherSignal{Date: "2026-06-02", Description: "Storm warning"},
	})
	revised := agent.GenerateRevisedItinerary(context.Background(), itinerary, report)

	require.Len(t, revised.NewDailySchedule, 2)
	day2 := revised.NewDailySchedule[1]
	require.Len(t, day2.Activities, 4)
	for _, activity := range day2.Activities {
		assert.Equal(t, "indoor", activity.Type)
	}
	// day 1 keeps its original activities
	assert.Equal(t, "breakfast", revised.NewDailySchedule[0].Activities[0].Type)
	assert.Len(t, itinerary.DailySchedule[1].Activities, 3)
}

func TestRevisedItineraryNoDisruptions(t *testing.T) {
	agent := NewDisruptionAgent(zap.NewNop())
	itinerary := sampleTravelItinerary()

	revised := agent.GenerateRevisedItinerary(context.Background(), itinerary, domain_models.DisruptionReport{})
	assert.Empty(t, revised.Changes)
	assert.Equal(t, "Minor adjustments made", revised.RevisionNotes)
	assert.Equal(t, 0.0, revised.EstimatedAdditionalCost)
}
