package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
	"smarttravel/pkg/utils"
)

const conciergeVersion = "1.0.0"

type ConciergeServiceInterface interface {
	ProcessRequest(ctx context.Context, request domain_models.TravelRequest) (*domain_models.TravelItinerary, error)
	Status() domain_models.ConciergeStatus
}

// ConciergeService is the single externally-consumed entry point. It
// validates the request, fans out to the provider agents, builds the
// day-by-day schedule and aggregates the cost estimate.
type ConciergeService struct {
	flightAgent     FlightAgentInterface
	hotelAgent      HotelAgentInterface
	attractionAgent AttractionAgentInterface
	itineraryAgent  ItineraryAgentInterface
	logger          *zap.Logger
	initializedAt   time.Time
}

func NewConciergeService(
	flightAgent FlightAgentInterface,
	hotelAgent HotelAgentInterface,
	attractionAgent AttractionAgentInterface,
	itineraryAgent ItineraryAgentInterface,
	logger *zap.Logger,
) ConciergeServiceInterface {
	return &ConciergeService{
		flightAgent:     flightAgent,
		hotelAgent:      hotelAgent,
		attractionAgent: attractionAgent,
		itineraryAgent:  itineraryAgent,
		logger:          logger,
		initializedAt:   time.Now(),
	}
}

// ProcessRequest produces a complete itinerary or fails as a whole; there is
// no partial-result degradation. Agent errors propagate untouched to the
// boundary.
func (c *ConciergeService) ProcessRequest(ctx context.Context, request domain_models.TravelRequest) (*domain_models.TravelItinerary, error) {
	c.logger.Info("processing travel request", zap.String("destination", request.Destination))

	if err := request.Validate(); err != nil {
		return nil, err
	}

	duration, err := utils.DurationDays(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	// The three discovery agents share no state, so they run concurrently.
	var (
		wg          sync.WaitGroup
		flights     []domain_models.FlightOption
		hotels      []domain_models.HotelOption
		attractions []domain_models.Attraction

		flightErr     error
		hotelErr      error
		attractionErr error
	)

	// No origin means no flight search; a deliberate skip, not a failure.
	if request.Origin != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flights, flightErr = c.flightAgent.SearchFlights(
				ctx, request.Origin, request.Destination, request.StartDate, request.EndDate, request.Travelers)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		hotels, hotelErr = c.hotelAgent.SearchHotels(
			ctx, request.Destination, request.StartDate, request.EndDate, request.Travelers, 1)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		attractions, attractionErr = c.attractionAgent.Discover(
			ctx, request.Destination, request.Preferences.AttractionTypes, 10)
	}()

	wg.Wait()

	for _, agentErr := range []error{flightErr, hotelErr, attractionErr} {
		if agentErr != nil {
			return nil, agentErr
		}
	}

	itinerary, err := c.itineraryAgent.CreateItinerary(
		ctx, request.Destination, request.StartDate, request.EndDate, attractions, request.Preferences)
	if err != nil {
		return nil, err
	}

	if flights == nil {
		flights = []domain_models.FlightOption{}
	}

	return &domain_models.TravelItinerary{
		Destination:        request.Destination,
		DurationDays:       duration,
		Flights:            flights,
		Accommodations:     hotels,
		Attractions:        attractions,
		DailySchedule:      itinerary.Days,
		TotalEstimatedCost: c.estimateTotalCost(flights, hotels, attractions, duration),
	}, nil
}

// estimateTotalCost sums the cheapest flight, the cheapest hotel over the
// full duration and every discovered attraction. The displayed lists carry
// all candidates; the total deliberately uses the cheapest of each.
func (c *ConciergeService) estimateTotalCost(
	flights []domain_models.FlightOption,
	hotels []domain_models.HotelOption,
	attractions []domain_models.Attraction,
	duration int,
) float64 {
	var total float64

	if best := c.flightAgent.BestFlight(flights, "price"); best != nil {
		total += best.Price
	}
	if best := c.hotelAgent.BestHotel(hotels, "price"); best != nil {
		total += c.hotelAgent.TotalCost(*best, duration, 1)
	}
	total += c.attractionAgent.ActivitiesCost(attractions)

	return total
}

func (c *ConciergeService) Status() domain_models.ConciergeStatus {
	return domain_models.ConciergeStatus{
		Status:        "active",
		Version:       conciergeVersion,
		InitializedAt: c.initializedAt.Format(time.RFC3339),
		Agents: []domain_models.AgentStatus{
			c.flightAgent.Status(),
			c.hotelAgent.Status(),
			c.attractionAgent.Status(),
			c.itineraryAgent.Status(),
		},
	}
}
