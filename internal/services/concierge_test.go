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

func newTestConcierge() ConciergeServiceInterface {
	logger := zap.NewNop()
	return NewConciergeService(
		NewFlightAgent(logger),
		NewHotelAgent(logger),
		NewAttractionAgent(logger),
		NewItineraryAgent(logger),
		logger,
	)
}

func TestProcessRequestFullTrip(t *testing.T) {
	concierge := newTestConcierge()

	itinerary, err := concierge.ProcessRequest(context.Background(), domain_models.TravelRequest{
		Destination: "Paris",
		Origin:      "New York",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-07",
		Travelers:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Paris", itinerary.Destination)
	assert.Equal(t, 7, itinerary.DurationDays)
	assert.Len(t, itinerary.Flights, 2)
	assert.Len(t, itinerary.Accommodations, 3)
	assert.Len(t, itinerary.Attractions, 5)
	assert.Len(t, itinerary.DailySchedule, 7)

	// cheapest flight 200x2 + cheapest hotel 55x7 + attractions 75
	assert.InDelta(t, 860.0, itinerary.TotalEstimatedCost, 1e-9)
}

func TestProcessRequestWithoutOrigin(t *testing.T) {
	concierge := newTestConcierge()

	itinerary, err := concierge.ProcessRequest(context.Background(), domain_models.TravelRequest{
		Destination: "Paris",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		Travelers:   1,
	})
	require.NoError(t, err)

	assert.NotNil(t, itinerary.Flights)
	assert.Empty(t, itinerary.Flights)
	assert.NotEmpty(t, itinerary.Accommodations)
	// no flight component in the estimate
	assert.InDelta(t, 55.0*3+75.0, itinerary.TotalEstimatedCost, 1e-9)
}

func TestProcessRequestAttractionPreferences(t *testing.T) {
	concierge := newTestConcierge()

	itinerary, err := concierge.ProcessRequest(context.Background(), domain_models.TravelRequest{
		Destination: "Paris",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-03",
		Travelers:   1,
		Preferences: domain_models.TravelPreferences{
			AttractionTypes: []string{"museum"},
		},
	})
	require.NoError(t, err)

	require.Len(t, itinerary.Attractions, 1)
	assert.Equal(t, "museum", itinerary.Attractions[0].Category)
}

func TestProcessRequestValidation(t *testing.T) {
	concierge := newTestConcierge()
	negative := -100.0

	cases := []struct {
		name    string
		request domain_models.TravelRequest
		wantErr error
	}{
		{
			name:    "empty destination",
			request: domain_models.TravelRequest{StartDate: "2026-06-01", EndDate: "2026-06-03", Travelers: 1},
			wantErr: utils.ErrEmptyDestination,
		},
		{
			name:    "bad start date",
			request: domain_models.TravelRequest{Destination: "Paris", StartDate: "June 1", EndDate: "2026-06-03", Travelers: 1},
			wantErr: utils.ErrInvalidDateFormat,
		},
		{
			name:    "end before start",
			request: domain_models.TravelRequest{Destination: "Paris", StartDate: "2026-06-03", EndDate: "2026-06-01", Travelers: 1},
			wantErr: utils.ErrInvalidDateRange,
		},
		{
			name: "negative budget",
			request: domain_models.TravelRequest{
				Destination: "Paris", StartDate: "2026-06-01", EndDate: "2026-06-03",
				Travelers: 1, Budget: &negative,
			},
			wantErr: utils.ErrInvalidBudget,
		},
		{
			name:    "zero travelers",
			request: domain_models.TravelRequest{Destination: "Paris", StartDate: "2026-06-01", EndDate: "2026-06-03"},
			wantErr: utils.ErrInvalidTravelers,
		},
		{
			name: "too many travelers",
			request: domain_models.TravelRequest{
				Destination: "Paris", StartDate: "2026-06-01", EndDate: "2026-06-03", Travelers: 21,
			},
			wantErr: utils.ErrInvalidTravelers,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := concierge.ProcessRequest(context.Background(), tc.request)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestConciergeStatus(t *testing.T) {
	concierge := newTestConcierge()

	status := concierge.Status()
	assert.Equal(t, "active", status.Status)
	assert.Equal(t, "1.0.0", status.Version)
	require.Len(t, status.Agents, 4)

	names := make([]string, 0, len(status.Agents))
	for _, agent := range status.Agents {
		assert.Equal(t, "active", agent.Status)
		names = append(names, agent.Agent)
	}
	assert.Equal(t, []string{"FlightAgent", "HotelAgent", "AttractionAgent", "ItineraryAgent"}, names)
}
