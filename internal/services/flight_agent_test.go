package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

func TestSearchFlights(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())

	flights, err := agent.SearchFlights(context.Background(), "NYC", "Paris", "2024-06-01", "", 1)
	require.NoError(t, err)
	require.Len(t, flights, 2)

	assert.Equal(t, "NYC", flights[0].DepartureCity)
	assert.Equal(t, "Paris", flights[0].ArrivalCity)
	assert.Equal(t, "2024-06-01T08:00:00", flights[0].DepartureTime)
}

func TestSearchFlightsScalesWithPassengers(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())

	single, err := agent.SearchFlights(context.Background(), "NYC", "Paris", "2024-06-01", "", 1)
	require.NoError(t, err)
	double, err := agent.SearchFlights(context.Background(), "NYC", "Paris", "2024-06-01", "", 2)
	require.NoError(t, err)

	for i := range single {
		assert.Equal(t, single[i].Price*2, double[i].Price)
	}
}

func TestBestFlight(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())
	flights, err := agent.SearchFlights(context.Background(), "NYC", "Paris", "2024-06-01", "", 1)
	require.NoError(t, err)

	best := agent.BestFlight(flights, "price")
	require.NotNil(t, best)
	assert.Equal(t, 200.0, best.Price)

	best = agent.BestFlight(flights, "duration")
	require.NotNil(t, best)
	assert.Equal(t, 4.0, best.DurationHours)

	best = agent.BestFlight(flights, "stops")
	require.NotNil(t, best)
	assert.Equal(t, 0, best.Stops)
}

func TestBestFlightEmptyListReturnsNil(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())
	assert.Nil(t, agent.BestFlight(nil, "price"))
	assert.Nil(t, agent.BestFlight([]domain_models.FlightOption{}, "price"))
}

func TestBestFlightUnknownPreferenceFallsBackToFirst(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())
	flights := []domain_models.FlightOption{
		{Airline: "First", Price: 500},
		{Airline: "Second", Price: 100},
	}
	best := agent.BestFlight(flights, "comfort")
	require.NotNil(t, best)
	assert.Equal(t, "First", best.Airline)
}

func TestBestFlightStableOnTies(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())
	flights := []domain_models.FlightOption{
		{Airline: "First", Price: 100},
		{Airline: "Second", Price: 100},
	}
	best := agent.BestFlight(flights, "price")
	require.NotNil(t, best)
	assert.Equal(t, "First", best.Airline)
}

func TestFlightAgentStatus(t *testing.T) {
	agent := NewFlightAgent(zap.NewNop())
	status := agent.Status()
	assert.Equal(t, "FlightAgent", status.Agent)
	assert.Equal(t, "active", status.Status)
	assert.NotEmpty(t, status.InitializedAt)
}
