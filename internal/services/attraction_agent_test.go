package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiscoverAttractions(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())

	attractions, err := agent.Discover(context.Background(), "Paris", nil, 10)
	require.NoError(t, err)
	require.Len(t, attractions, 5)
	assert.Equal(t, "Paris Museum of Art", attractions[0].Name)
}

func TestDiscoverAttractionsCategoryFilter(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())

	attractions, err := agent.Discover(context.Background(), "Paris", []string{"museum"}, 10)
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, "museum", attractions[0].Category)

	attractions, err = agent.Discover(context.Background(), "Paris", []string{"museum", "park"}, 10)
	require.NoError(t, err)
	assert.Len(t, attractions, 2)
}

func TestDiscoverAttractionsMaxResults(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())

	attractions, err := agent.Discover(context.Background(), "Paris", nil, 3)
	require.NoError(t, err)
	assert.Len(t, attractions, 3)
}

func TestTopAttractionsSortedByRating(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())
	attractions, err := agent.Discover(context.Background(), "Paris", nil, 10)
	require.NoError(t, err)

	top := agent.TopAttractions(attractions, 3)
	require.Len(t, top, 3)
	assert.True(t, top[0].Rating >= top[1].Rating)
	assert.True(t, top[1].Rating >= top[2].Rating)
	assert.Equal(t, "Historic Paris Tower", top[0].Name)

	// input order untouched
	assert.Equal(t, "Paris Museum of Art", attractions[0].Name)
}

func TestActivitiesCost(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())
	attractions, err := agent.Discover(context.Background(), "Paris", nil, 10)
	require.NoError(t, err)

	assert.Equal(t, 75.0, agent.ActivitiesCost(attractions))
	assert.Equal(t, 0.0, agent.ActivitiesCost(nil))
}

func TestEstimateTimeNeeded(t *testing.T) {
	agent := NewAttractionAgent(zap.NewNop())
	attractions, err := agent.Discover(context.Background(), "Paris", nil, 10)
	require.NoError(t, err)

	assert.Equal(t, 11.5, agent.EstimateTimeNeeded(attractions))
}
