package domain_models

import "time"

type DisruptionType string

const (
	DisruptionFlightCancelled     DisruptionType = "flight_cancelled"
	DisruptionFlightDelayed       DisruptionType = "flight_delayed"
	DisruptionSevereWeather       DisruptionType = "severe_weather"
	DisruptionHotelUnavailable    DisruptionType = "hotel_unavailable"
	DisruptionAttractionClosed    DisruptionType = "attraction_closed"
	DisruptionTransportationIssue DisruptionType = "transportation_issue"
	DisruptionOther               DisruptionType = "other"
)

type DisruptionSeverity string

const (
	SeverityLow      DisruptionSeverity = "low"
	SeverityMedium   DisruptionSeverity = "medium"
	SeverityHigh     DisruptionSeverity = "high"
	SeverityCritical DisruptionSeverity = "critical"
)

type Disruption struct {
	Type               DisruptionType     `json:"type"`
	Severity           DisruptionSeverity `json:"severity"`
	AffectedDate       string             `json:"affected_date"`
	Description        string             `json:"description"`
	AffectedComponents []string           `json:"affected_components"`
	DetectedAt         time.Time          `json:"detected_at"`
}

// SevereWeatherSignal is the live-data payload describing a weather event.
type SevereWeatherSignal struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// LiveSignals are the explicit flags the detection rules evaluate.
// No polling, no external calls.
type LiveSignals struct {
	FlightCancelled    bool                 `json:"flight_cancelled"`
	FlightDelayedHours float64              `json:"flight_delayed_hours"`
	SevereWeather      *SevereWeatherSignal `json:"severe_weather,omitempty"`
}

type DisruptionReport struct {
	ID                 string       `json:"id"`
	Disruptions        []Disruption `json:"disruptions"`
	RiskScore          float64      `json:"risk_score"`
	Recommendations    []string     `json:"recommendations"`
	RequiresReplanning bool         `json:"requires_replanning"`
	GeneratedAt        time.Time    `json:"generated_at"`
}

type ItineraryChange struct {
	Type         string `json:"type"`
	Description  string `json:"description"`
	AffectedDate string `json:"affected_date"`
}

type RevisedItinerary struct {
	Original                TravelItinerary   `json:"original_itinerary"`
	DisruptionsAddressed    []Disruption      `json:"disruptions_addressed"`
	Changes                 []ItineraryChange `json:"changes"`
	NewFlights              []FlightOption    `json:"new_flights"`
	NewAccommodations       []HotelOption     `json:"new_accommodations"`
	NewDailySchedule        []DayPlan         `json:"new_daily_schedule"`
	EstimatedAdditionalCost float64           `json:"estimated_additional_cost"`
	RevisionNotes           string            `json:"revision_notes"`
	RevisedAt               time.Time         `json:"revised_at"`
}
