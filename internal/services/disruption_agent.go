package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smarttravel/internal/models/domain_models"
)

type DisruptionAgentInterface interface {
	DetectDisruptions(ctx context.Context, itinerary domain_models.TravelItinerary, signals domain_models.LiveSignals) domain_models.DisruptionReport
	GenerateRevisedItinerary(ctx context.Context, itinerary domain_models.TravelItinerary, report domain_models.DisruptionReport) domain_models.RevisedItinerary
	Status() domain_models.AgentStatus
}

type DisruptionAgent struct {
	logger        *zap.Logger
	initializedAt time.Time
}

func NewDisruptionAgent(logger *zap.Logger) DisruptionAgentInterface {
	return &DisruptionAgent{
		logger:        logger,
		initializedAt: time.Now(),
	}
}

var severityWeights = map[domain_models.DisruptionSeverity]float64{
	domain_models.SeverityLow:      10,
	domain_models.SeverityMedium:   30,
	domain_models.SeverityHigh:     60,
	domain_models.SeverityCritical: 100,
}

// DetectDisruptions evaluates the rule set over the live-signal flags. Each
// matched rule contributes exactly one disruption with a fixed severity.
func (d *DisruptionAgent) DetectDisruptions(ctx context.Context, itinerary domain_models.TravelItinerary, signals domain_models.LiveSignals) domain_models.DisruptionReport {
	d.logger.Info("checking itinerary for disruptions", zap.String("destination", itinerary.Destination))

	startDate := ""
	if len(itinerary.DailySchedule) > 0 {
		startDate = itinerary.DailySchedule[0].Date
	}

	var disruptions []domain_models.Disruption

	if signals.FlightCancelled {
		disruptions = append(disruptions, domain_models.Disruption{
			Type:               domain_models.DisruptionFlightCancelled,
			Severity:           domain_models.SeverityHigh,
			AffectedDate:       startDate,
			Description:        "Outbound flight has been cancelled",
			AffectedComponents: []string{"flight", "day_1_activities"},
			DetectedAt:         time.Now(),
		})
	}

	if signals.FlightDelayedHours > 3 {
		disruptions = append(disruptions, domain_models.Disruption{
			Type:               domain_models.DisruptionFlightDelayed,
			Severity:           domain_models.SeverityMedium,
			AffectedDate:       startDate,
			Description:        fmt.Sprintf("Flight delayed by %.0f hours", signals.FlightDelayedHours),
			AffectedComponents: []string{"flight", "day_1_activities"},
			DetectedAt:         time.Now(),
		})
	}

	if signals.SevereWeather != nil {
		description := signals.SevereWeather.Description
		if description == "" {
			description = "Severe weather expected"
		}
		disruptions = append(disruptions, domain_models.Disruption{
			Type:               domain_models.DisruptionSevereWeather,
			Severity:           domain_models.SeverityMedium,
			AffectedDate:       signals.SevereWeather.Date,
			Description:        description,
			AffectedComponents: []string{"outdoor_activities"},
			DetectedAt:         time.Now(),
		})
	}

	requiresReplanning := false
	for _, disruption := range disruptions {
		if disruption.Severity == domain_models.SeverityHigh || disruption.Severity == domain_models.SeverityCritical {
			requiresReplanning = true
			break
		}
	}

	return domain_models.DisruptionReport{
		ID:                 uuid.New().String(),
		Disruptions:        disruptions,
		RiskScore:          riskScore(disruptions),
		Recommendations:    recommendations(disruptions),
		RequiresReplanning: requiresReplanning,
		GeneratedAt:        time.Now(),
	}
}

// riskScore sums the severity weights and saturates at 100.
func riskScore(disruptions []domain_models.Disruption) float64 {
	var total float64
	for _, disruption := range disruptions {
		total += severityWeights[disruption.Severity]
	}
	if total > 100 {
		return 100
	}
	return total
}

func recommendations(disruptions []domain_models.Disruption) []string {
	var recs []string
	for _, disruption := range disruptions {
		switch disruption.Type {
		case domain_models.DisruptionFlightCancelled:
			recs = append(recs,
				"Contact airline immediately for rebooking options",
				"Consider flexible accommodation if arrival is delayed")
		case domain_models.DisruptionSevereWeather:
			recs = append(recs,
				"Have backup indoor activities planned",
				"Check local weather alerts regularly")
		case domain_models.DisruptionAttractionClosed:
			recs = append(recs, "Research alternative attractions in the area")
		}
	}
	return recs
}

// GenerateRevisedItinerary applies one fixed remedial template per
// disruption. Remedies targeting the same day overwrite each other,
// last applied wins. Day plans are value-copied before any mutation so the
// original itinerary is never aliased.
func (d *DisruptionAgent) GenerateRevisedItinerary(ctx context.Context, itinerary domain_models.TravelItinerary, report domain_models.DisruptionReport) domain_models.RevisedItinerary {
	d.logger.Info("generating revised itinerary")

	var (
		changes          []domain_models.ItineraryChange
		newFlights       []domain_models.FlightOption
		newDailySchedule []domain_models.DayPlan
		additionalCost   float64
		notes            []string
	)

	for _, disruption := range report.Disruptions {
		switch disruption.Type {
		case domain_models.DisruptionFlightCancelled:
			newFlights = alternativeFlights(itinerary)
			changes = append(changes, domain_models.ItineraryChange{
				Type:         "flight_replacement",
				Description:  "Booked alternative flight",
				AffectedDate: disruption.AffectedDate,
			})
			additionalCost += 200.0
			notes = append(notes, "Flight rebooked to next available departure")

		case domain_models.DisruptionFlightDelayed:
			newDailySchedule = dropFirstActivityOfDayOne(itinerary.DailySchedule)
			changes = append(changes, domain_models.ItineraryChange{
				Type:         "schedule_adjustment",
				Description:  "Day 1 activities rescheduled",
				AffectedDate: disruption.AffectedDate,
			})
			notes = append(notes, "First day activities postponed to accommodate delay")

		case domain_models.DisruptionSevereWeather:
			newDailySchedule = swapToIndoorActivities(itinerary.DailySchedule, disruption.AffectedDate)
			changes = append(changes, domain_models.ItineraryChange{
				Type:         "activity_replacement",
				Description:  "Outdoor activities replaced with indoor alternatives",
				AffectedDate: disruption.AffectedDate,
			})
			notes = append(notes, "Moved outdoor activities to indoor venues due to weather")
		}
	}

	revisionNotes := "Minor adjustments made"
	if len(notes) > 0 {
		revisionNotes = strings.Join(notes, " | ")
	}

	return domain_models.RevisedItinerary{
		Original:                itinerary,
		DisruptionsAddressed:    report.Disruptions,
		Changes:                 changes,
		NewFlights:              newFlights,
		NewAccommodations:       []domain_models.HotelOption{},
		NewDailySchedule:        newDailySchedule,
		EstimatedAdditionalCost: additionalCost,
		RevisionNotes:           revisionNotes,
		RevisedAt:               time.Now(),
	}
}

func alternativeFlights(itinerary domain_models.TravelItinerary) []domain_models.FlightOption {
	departure := ""
	if len(itinerary.DailySchedule) > 0 {
		departure = itinerary.DailySchedule[0].Date
	}
	return []domain_models.FlightOption{
		{
			Airline:       "Alternative Airways",
			DepartureTime: departure + "T14:00:00",
			ArrivalTime:   departure + "T16:30:00",
			Price:         450.0,
			DurationHours: 2.5,
		},
	}
}

func dropFirstActivityOfDayOne(schedule []domain_models.DayPlan) []domain_models.DayPlan {
	adjusted := cloneSchedule(schedule)
	if len(adjusted) > 0 && len(adjusted[0].Activities) > 0 {
		adjusted[0].Activities = adjusted[0].Activities[1:]
	}
	return adjusted
}

var indoorActivities = []domain_models.Activity{
	{Time: "10:00", Type: "indoor", Description: "Visit local museum"},
	{Time: "12:00", Type: "indoor", Description: "Explore art gallery"},
	{Time: "14:00", Type: "indoor", Description: "Indoor market tour"},
	{Time: "16:00", Type: "indoor", Description: "Cooking class"},
}

func swapToIndoorActivities(schedule []domain_models.DayPlan, affectedDate string) []domain_models.DayPlan {
	adjusted := cloneSchedule(schedule)
	for i := range adjusted {
		if adjusted[i].Date == affectedDate {
			activities := make([]domain_models.Activity, len(indoorActivities))
			copy(activities, indoorActivities)
			adjusted[i].Activities = activities
			adjusted[i].Notes = "Schedule adjusted for indoor activities"
		}
	}
	return adjusted
}

func cloneSchedule(schedule []domain_models.DayPlan) []domain_models.DayPlan {
	out := make([]domain_models.DayPlan, len(schedule))
	for i, day := range schedule {
		out[i] = day.Clone()
	}
	return out
}

func (d *DisruptionAgent) Status() domain_models.AgentStatus {
	return domain_models.AgentStatus{
		Agent:         "DisruptionAgent",
		Status:        "active",
		InitializedAt: d.initializedAt.Format(time.RFC3339),
	}
}
